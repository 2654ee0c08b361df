package service

import (
	"context"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/repository"
	"biblioteca-backend/internal/validate"
)

type memberService struct {
	memberRepo repository.MemberRepository
	loanRepo   repository.LoanRepository
	uow        repository.UnitOfWork
}

func NewMemberService(memberRepo repository.MemberRepository, loanRepo repository.LoanRepository, uow repository.UnitOfWork) MemberService {
	return &memberService{memberRepo: memberRepo, loanRepo: loanRepo, uow: uow}
}

func (s *memberService) Register(ctx context.Context, in RegisterMemberInput) (*domain.Member, error) {
	nationalID, err := validate.NationalID(in.NationalID)
	if err != nil {
		return nil, err
	}
	name, err := validate.MemberName(in.Name)
	if err != nil {
		return nil, err
	}
	email, err := validate.Email(in.Email)
	if err != nil {
		return nil, err
	}
	phone, err := validate.Phone(in.Phone)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{Name: name, NationalID: nationalID, Email: email, Phone: phone}
	err = s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		existing, err := r.Members.GetByNationalID(ctx, nationalID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Conflictf("a member with this national id is already registered")
		}
		existing, err = r.Members.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Conflictf("a member with this email is already registered")
		}
		return r.Members.Create(ctx, member)
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (s *memberService) Get(ctx context.Context, id int32) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *memberService) List(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepo.List(ctx)
}

func (s *memberService) Update(ctx context.Context, id int32, in UpdateMemberInput) (*domain.Member, error) {
	var member *domain.Member
	err := s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		var err error
		member, err = r.Members.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			if member.Name, err = validate.MemberName(*in.Name); err != nil {
				return err
			}
		}
		if in.Email != nil {
			email, err := validate.Email(*in.Email)
			if err != nil {
				return err
			}
			if email != member.Email {
				other, err := r.Members.GetByEmail(ctx, email)
				if err != nil {
					return err
				}
				if other != nil && other.ID != id {
					return domain.Conflictf("this email is already in use by another member")
				}
			}
			member.Email = email
		}
		if in.Phone != nil {
			if member.Phone, err = validate.Phone(*in.Phone); err != nil {
				return err
			}
		}

		return r.Members.Update(ctx, member)
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a member unless they still hold open loans.
func (s *memberService) Delete(ctx context.Context, id int32) error {
	return s.uow.WithinTx(ctx, func(r repository.Repositories) error {
		if _, err := r.Members.GetByID(ctx, id); err != nil {
			return err
		}
		open, err := r.Loans.CountOpenByMember(ctx, id)
		if err != nil {
			return err
		}
		if open > 0 {
			return domain.Conflictf("cannot delete member: %d open loan(s) must be returned first", open)
		}
		return r.Members.Delete(ctx, id)
	})
}
