package domain

type Member struct {
	ID           int32  `json:"id"`
	MemberNumber int32  `json:"member_number"`
	Name         string `json:"name"`
	NationalID   string `json:"national_id"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}
