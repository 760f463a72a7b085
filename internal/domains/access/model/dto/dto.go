package dto

import (
	"prism/internal/domains/access/model"
	"prism/internal/domains/access/policy"
	gModel "prism/shared/model"
	"prism/shared/timezone"

	"github.com/google/uuid"
)

type UpsertAccessRequest struct {
	UserID    string `json:"user_id"    validate:"required,uuid"`
	Module    string `json:"module"     validate:"required"`
	CanView   bool   `json:"can_view"`
	CanCreate bool   `json:"can_create"`
	CanEdit   bool   `json:"can_edit"`
	CanDelete bool   `json:"can_delete"`
}

func (u *UpsertAccessRequest) ToModel(user string) model.ModuleAccess {
	return model.ModuleAccess{
		ID:        uuid.NewString(),
		UserID:    u.UserID,
		Module:    u.Module,
		CanView:   u.CanView,
		CanCreate: u.CanCreate,
		CanEdit:   u.CanEdit,
		CanDelete: u.CanDelete,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AccessResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Module    string `json:"module"`
	CanView   bool   `json:"can_view"`
	CanCreate bool   `json:"can_create"`
	CanEdit   bool   `json:"can_edit"`
	CanDelete bool   `json:"can_delete"`
}

func (r *AccessResponse) FromModel(model model.ModuleAccess) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Module = model.Module
	r.CanView = model.CanView
	r.CanCreate = model.CanCreate
	r.CanEdit = model.CanEdit
	r.CanDelete = model.CanDelete
}

type GetAccessResponse struct {
	Grants []AccessResponse `json:"grants"`
}

func (r *GetAccessResponse) FromModels(models []model.ModuleAccess) {
	r.Grants = make([]AccessResponse, len(models))
	for i, mod := range models {
		r.Grants[i].FromModel(mod)
	}
}

// ToGrants converts stored rows into the evaluator's grant slice.
func ToGrants(models []model.ModuleAccess) []policy.Grant {
	grants := make([]policy.Grant, len(models))
	for i, mod := range models {
		grants[i] = policy.Grant{
			UserID:    mod.UserID,
			Module:    mod.Module,
			CanView:   mod.CanView,
			CanCreate: mod.CanCreate,
			CanEdit:   mod.CanEdit,
			CanDelete: mod.CanDelete,
		}
	}

	return grants
}
