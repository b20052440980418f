package mapper

import (
	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/model"
)

type SavedDocumentMapper struct{}

func NewSavedDocumentMapper() *SavedDocumentMapper {
	return &SavedDocumentMapper{}
}

func (m *SavedDocumentMapper) ToEntity(d *model.SavedDocument) *entity.SavedDocument {
	if d == nil {
		return nil
	}

	return &entity.SavedDocument{
		Id:        d.Id,
		UserId:    d.UserId,
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (m *SavedDocumentMapper) ToModel(d *entity.SavedDocument) *model.SavedDocument {
	if d == nil {
		return nil
	}

	return &model.SavedDocument{
		Id:        d.Id,
		UserId:    d.UserId,
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
