package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"time"

	"github.com/jinzhu/copier"
)

func toUserDTO(u *model.User) dto.UserDTO {
	var d dto.UserDTO
	_ = copier.Copy(&d, u)
	if d.Following == nil {
		d.Following = []string{}
	}
	return d
}

func toCommentDTO(c *model.Comment) dto.CommentDTO {
	var d dto.CommentDTO
	_ = copier.Copy(&d, c)
	d.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	return d
}

func toWritingDTO(w *model.Writing) dto.WritingDTO {
	var d dto.WritingDTO
	_ = copier.Copy(&d, w)
	d.CreatedAt = w.CreatedAt.Format(time.RFC3339)
	d.UpdatedAt = w.UpdatedAt.Format(time.RFC3339)

	d.Comments = make([]dto.CommentDTO, 0, len(w.Comments))
	for i := range w.Comments {
		d.Comments = append(d.Comments, toCommentDTO(&w.Comments[i]))
	}
	return d
}
