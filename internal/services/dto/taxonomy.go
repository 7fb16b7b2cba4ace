package dto

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
