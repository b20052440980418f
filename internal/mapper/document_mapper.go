package mapper

import (
	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.BizDocument) *entity.BizDocument {
	if d == nil {
		return nil
	}

	return &entity.BizDocument{
		Id:         d.Id,
		UserId:     d.UserId,
		FileName:   d.FileName,
		FilePath:   d.FilePath,
		FileSize:   d.FileSize,
		MimeType:   d.MimeType,
		UploadedAt: d.UploadedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.BizDocument) *model.BizDocument {
	if d == nil {
		return nil
	}

	return &model.BizDocument{
		Id:         d.Id,
		UserId:     d.UserId,
		FileName:   d.FileName,
		FilePath:   d.FilePath,
		FileSize:   d.FileSize,
		MimeType:   d.MimeType,
		UploadedAt: d.UploadedAt,
	}
}
