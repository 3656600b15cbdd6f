package entity

import "strings"

// Blog is a blog post managed by admins.
type Blog struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
	AuthorID    string   `json:"author_id"`
	AuthorName  string   `json:"author_name"`
	IsPublished bool     `json:"is_published"`
	Views       int      `json:"views"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// ItemID returns the blog identity.
func (b Blog) ItemID() string {
	return b.ID
}

// BlogInput is the admin editor form.
type BlogInput struct {
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Excerpt     string   `json:"excerpt" validate:"required"`
	Category    string   `json:"category" validate:"oneof=news tips guides technology"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"is_published"`
}

// ParseTags splits a comma-separated tag field, trimming blanks.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

// ApplyTo copies the form onto an existing blog.
func (in BlogInput) ApplyTo(b Blog) Blog {
	b.Title = in.Title
	b.Content = in.Content
	b.Excerpt = in.Excerpt
	b.Category = in.Category
	b.ImageURL = in.ImageURL
	b.Tags = in.Tags
	b.IsPublished = in.IsPublished

	return b
}
