package models

import "time"

type SignupRequest struct {
	Name            string `form:"name" json:"name" binding:"required,min=1,max=100"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Password        string `form:"password" json:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateSettingsRequest struct {
	Name     string `form:"name" json:"name" binding:"required,min=1,max=100"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password"`
}

type DeveloperRequestForm struct {
	Reason string `form:"reason" json:"reason" binding:"required"`
}

type IdeaListParams struct {
	Search   string `form:"search"`
	Category string `form:"category,default=all"`
	Sort     string `form:"sort,default=newest"`
}

type CreateIdeaRequest struct {
	Title       string `form:"title" binding:"required,min=1,max=255"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category" binding:"required"`
	ImageURL    string `form:"image_url"`
}

type EditIdeaRequest struct {
	Title       string `form:"title" binding:"required,min=1,max=255"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category" binding:"required"`
	ImageURL    string `form:"image_url"`
}

type VoteRequest struct {
	VoteType string `json:"voteType"`
}

type ReportRequest struct {
	Description string `json:"description"`
}

type InlineEditRequest struct {
	Description string `json:"description" binding:"required"`
}

// ReportSummary is the public projection of a report: the reporter's
// identity is not exposed.
type ReportSummary struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ModeratedIdea is an idea annotated with its reports for the
// developer/admin moderation view.
type ModeratedIdea struct {
	Idea
	ReportCount int      `json:"report_count"`
	Reports     []Report `json:"reports"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
