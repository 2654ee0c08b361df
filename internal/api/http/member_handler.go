package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"biblioteca-backend/internal/domain"
	"biblioteca-backend/internal/service"

	"github.com/gorilla/mux"
)

// pathID extracts the numeric {id} route variable.
func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.Validationf("invalid id %q", raw)
	}
	return int32(id), nil
}

// MemberHandler exposes the member registry endpoints
type MemberHandler struct {
	memberSvc service.MemberService
}

func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if members == nil {
		members = []domain.Member{}
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	member, err := h.memberSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterMemberInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	member, err := h.memberSvc.Register(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"msg": "Member registered successfully", "member": member})
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var in service.UpdateMemberInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	member, err := h.memberSvc.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.memberSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Member deleted successfully"})
}
