package dto

import "smartpet-backend/internal/models"

type CreateCommentReq struct {
	Content         string  `json:"content" example:"What a good boy!"`
	ParentCommentID *string `json:"parent_comment_id,omitempty"`
	AuthorName      string  `json:"author_name,omitempty"`
	AvatarURL       string  `json:"avatar_url,omitempty"`
}

type ListCommentsResp struct {
	Items      []models.Comment `json:"items"`
	NextCursor *string          `json:"next_cursor"`
	HasMore    bool             `json:"has_more"`
}
