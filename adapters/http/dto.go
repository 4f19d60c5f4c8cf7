package http

import (
	"github.com/google/uuid"

	"github.com/ngocmaitran/portfolio-cms/internal/domain/profile"
	"github.com/ngocmaitran/portfolio-cms/internal/domain/section"
)

// Profile

type UpdateProfileRequest struct {
	Name                   string `json:"name"`
	Subtitle               string `json:"subtitle"`
	RoleTitle              string `json:"role_title"`
	Headline               string `json:"headline"`
	HeadlineAccent         string `json:"headline_accent"`
	Description            string `json:"description"`
	JobTitle               string `json:"job_title"`
	Location               string `json:"location"`
	Experience             string `json:"experience"`
	Specialization         string `json:"specialization"`
	Email                  string `json:"email"`
	LinkedinURL            string `json:"linkedin_url"`
	TwitterURL             string `json:"twitter_url"`
	GithubURL              string `json:"github_url"`
	MethodologyQuote       string `json:"methodology_quote"`
	MethodologyDescription string `json:"methodology_description"`
	CTAHeadline            string `json:"cta_headline"`
	CTAAccent              string `json:"cta_accent"`
	AvatarURL              string `json:"avatar_url"`
	HeroImageURL           string `json:"hero_image_url"`
}

func (req *UpdateProfileRequest) ToDomain() *profile.Profile {
	return &profile.Profile{
		Name:                   req.Name,
		Subtitle:               req.Subtitle,
		RoleTitle:              req.RoleTitle,
		Headline:               req.Headline,
		HeadlineAccent:         req.HeadlineAccent,
		Description:            req.Description,
		JobTitle:               req.JobTitle,
		Location:               req.Location,
		Experience:             req.Experience,
		Specialization:         req.Specialization,
		Email:                  req.Email,
		LinkedinURL:            req.LinkedinURL,
		TwitterURL:             req.TwitterURL,
		GithubURL:              req.GithubURL,
		MethodologyQuote:       req.MethodologyQuote,
		MethodologyDescription: req.MethodologyDescription,
		CTAHeadline:            req.CTAHeadline,
		CTAAccent:              req.CTAAccent,
		AvatarURL:              req.AvatarURL,
		HeroImageURL:           req.HeroImageURL,
	}
}

// Projects

type ProjectRequest struct {
	Slug            string   `json:"slug"`
	Category        string   `json:"category"`
	Number          string   `json:"number"`
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	StatLabel1      string   `json:"stat_label_1"`
	StatValue1      string   `json:"stat_value_1"`
	StatLabel2      string   `json:"stat_label_2"`
	StatValue2      string   `json:"stat_value_2"`
	BgColor         string   `json:"bg_color"`
	DisplayOrder    int      `json:"display_order"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	Images          []string `json:"images"`
}

// Skills

type SkillRowRequest struct {
	ID   uuid.UUID `json:"id" binding:"required"`
	Name string    `json:"name" binding:"required"`
}

type CreateSkillRequest struct {
	Name string `json:"name" binding:"required"`
}

// Methodology

type MethodologyRowRequest struct {
	ID     uuid.UUID `json:"id" binding:"required"`
	Number string    `json:"number"`
	Title  string    `json:"title" binding:"required"`
	Items  []string  `json:"items"`
}

type CreateMethodologyRequest struct {
	Number string   `json:"number"`
	Title  string   `json:"title" binding:"required"`
	Items  []string `json:"items"`
}

// Sections

type CreateSectionRequest struct {
	Type   section.Type `json:"section_type" binding:"required"`
	Parent string       `json:"parent" binding:"required"`
}

type SaveSectionRequest struct {
	Title        *string          `json:"title"`
	Content      *string          `json:"content"`
	ImageURL     *string          `json:"image_url"`
	Images       []string         `json:"images"`
	DisplayOrder int              `json:"display_order"`
	Parent       string           `json:"parent"`
	Settings     section.Settings `json:"settings"`
}

type ReorderSectionsRequest struct {
	Parent    string `json:"parent" binding:"required"`
	Index     int    `json:"index"`
	Direction int    `json:"direction" binding:"required,oneof=-1 1"`
}

type SaveOrderRequest struct {
	OrderedIDs []uuid.UUID `json:"ordered_ids" binding:"required"`
}

// OrderedSectionsResponse reports a bulk order write. FailedIndices names the
// positions whose row write did not stick, empty on full success.
type OrderedSectionsResponse struct {
	Sections      []*section.Section `json:"sections"`
	FailedIndices []int              `json:"failed_indices"`
}

func ToOrderedSectionsResponse(sections []*section.Section, failed []int) OrderedSectionsResponse {
	if failed == nil {
		failed = []int{}
	}
	return OrderedSectionsResponse{Sections: sections, FailedIndices: failed}
}
