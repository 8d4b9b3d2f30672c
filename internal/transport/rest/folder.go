package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/service/folder"
)

type folderService interface {
	CreateFolder(ctx context.Context, input folder.CreateInput) (*domain.Folder, error)
	ListFolders(ctx context.Context) ([]domain.FolderWithRole, error)
	GetFolder(ctx context.Context, folderID uuid.UUID) (*domain.FolderWithRole, error)
	RenameFolder(ctx context.Context, input folder.RenameInput) (*domain.Folder, error)
	DeleteFolder(ctx context.Context, folderID uuid.UUID) error

	ListMembers(ctx context.Context, folderID uuid.UUID) ([]domain.FolderMembership, error)
	AddMember(ctx context.Context, input folder.MemberInput) (*domain.FolderMembership, error)
	UpdateMemberRole(ctx context.Context, input folder.MemberInput) (*domain.FolderMembership, error)
	RemoveMember(ctx context.Context, folderID uuid.UUID, email string) error
}

// FolderHandler serves folders and their memberships.
type FolderHandler struct {
	svc folderService
	log *slog.Logger
}

func NewFolderHandler(svc folderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{svc: svc, log: logger.With("handler", "folder")}
}

type folderRequest struct {
	Name string `json:"name"`
}

type memberRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// List handles GET /folders.
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	folders, err := h.svc.ListFolders(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(folders, func(f *domain.FolderWithRole) folderResponse {
		return toFolderResponse(&f.Folder, f.Role)
	}))
}

// Create handles POST /folders.
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	f, err := h.svc.CreateFolder(r.Context(), folder.CreateInput{Name: req.Name})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFolderResponse(f, domain.RoleOwner))
}

// Get handles GET /folders/{id}.
func (h *FolderHandler) Get(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	f, err := h.svc.GetFolder(r.Context(), folderID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFolderResponse(&f.Folder, f.Role))
}

// Rename handles PATCH /folders/{id}.
func (h *FolderHandler) Rename(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req folderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	f, err := h.svc.RenameFolder(r.Context(), folder.RenameInput{FolderID: folderID, Name: req.Name})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFolderResponse(f, ""))
}

// Delete handles DELETE /folders/{id}.
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteFolder(r.Context(), folderID); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMembers handles GET /folders/{id}/members.
func (h *FolderHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	members, err := h.svc.ListMembers(r.Context(), folderID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(members, toMemberResponse))
}

// AddMember handles POST /folders/{id}/members.
func (h *FolderHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req memberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.AddMember(r.Context(), folder.MemberInput{
		FolderID: folderID,
		Email:    req.Email,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMemberResponse(m))
}

// UpdateMember handles PATCH /folders/{id}/members/{email}.
func (h *FolderHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req memberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.UpdateMemberRole(r.Context(), folder.MemberInput{
		FolderID: folderID,
		Email:    r.PathValue("email"),
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponse(m))
}

// RemoveMember handles DELETE /folders/{id}/members/{email}.
func (h *FolderHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveMember(r.Context(), folderID, r.PathValue("email")); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
