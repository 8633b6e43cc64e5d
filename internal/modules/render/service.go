package render

import (
	"path"
	"strings"

	"github.com/stewartjane/packet-core/internal/models"
)

// PreviewKind values for file items.
const (
	PreviewPDF   = "pdf"
	PreviewImage = "image"
	PreviewNone  = "none"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// BuildPage composes the public view-model from a loaded packet. The packet
// must already carry its agent and position-ordered items.
func BuildPage(p *models.PacketModel) *Page {
	page := &Page{
		Slug:     p.Slug,
		Title:    FormatInline(p.Title),
		CoverURL: p.CoverImageURL,
		Sold:     p.IsSold(),
		Items:    []ItemView{},
	}

	if p.Subtitle != nil && strings.TrimSpace(*p.Subtitle) != "" {
		page.Subtitle = FormatInline(*p.Subtitle)
	}
	if p.Agent != nil {
		page.Agent = &AgentCard{
			Name:        p.Agent.Name,
			Phone:       p.Agent.Phone,
			Email:       p.Agent.Email,
			HeadshotURL: p.Agent.HeadshotURL,
		}
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) != "" {
		page.Description = buildDescription(*p.Description)
	}

	for _, item := range p.Items {
		page.Items = append(page.Items, buildItem(item))
	}
	return page
}

// BuildCards composes the browse-page card list from loaded packets.
func BuildCards(packets []models.PacketModel) []Card {
	cards := make([]Card, len(packets))
	for i, p := range packets {
		card := Card{
			Slug:      p.Slug,
			Title:     FormatInline(p.Title),
			CoverURL:  p.CoverImageURL,
			Sold:      p.IsSold(),
			CreatedAt: p.CreatedAt,
		}
		if p.Subtitle != nil && strings.TrimSpace(*p.Subtitle) != "" {
			card.Subtitle = FormatInline(*p.Subtitle)
		}
		if p.Agent != nil {
			card.AgentName = p.Agent.Name
		}
		cards[i] = card
	}
	return cards
}

func buildDescription(full string) *DescriptionView {
	preview := previewOf(full)
	return &DescriptionView{
		Full:          full,
		Preview:       preview,
		HasMore:       len(preview) < len(full),
		FullBlocks:    FormatText(full),
		PreviewBlocks: FormatText(preview),
	}
}

func buildItem(item models.PacketItemModel) ItemView {
	view := ItemView{
		ID:    item.ID,
		Type:  string(item.Type),
		Label: FormatInline(item.Label),
	}
	switch item.Type {
	case models.ItemFile:
		view.URL = item.URL
		view.PreviewKind = PreviewNone
		if item.URL != nil {
			view.PreviewKind = previewKindOf(*item.URL)
		}
	case models.ItemLink:
		view.URL = item.URL
	case models.ItemText:
		if item.Content != nil {
			view.Blocks = FormatText(*item.Content)
		}
	}
	return view
}

// previewKindOf decides inline embedding from the URL's file extension,
// ignoring any query string.
func previewKindOf(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	ext := strings.ToLower(path.Ext(url))
	switch {
	case ext == ".pdf":
		return PreviewPDF
	case imageExtensions[ext]:
		return PreviewImage
	default:
		return PreviewNone
	}
}
