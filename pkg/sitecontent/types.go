package sitecontent

import "time"

// Status is the domain type for content lifecycle states.
type Status string

// Content status constants (typed).
const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// IsValid returns true if the status is a known lifecycle state.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusPublished
}

// MediaType is the coarse classification of an uploaded media file.
type MediaType string

// Media type constants (typed).
const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeFile  MediaType = "file"
)

// SEO holds per-entity search metadata, embedded in every public entity.
type SEO struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Author is the byline attached to a blog post.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

// BlogPost is a single article in the blog collection.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Body        string    `json:"body"`
	Cover       string    `json:"cover,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Status      Status    `json:"status"`
	Author      Author    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	ReadTime    string    `json:"readTime,omitempty"`
	SEO         SEO       `json:"seo"`
}

// Metric is a single headline result shown on a case study.
type Metric struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// CaseStudy is a customer success story.
type CaseStudy struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Summary     string    `json:"summary,omitempty"`
	Client      string    `json:"client"`
	Industry    string    `json:"industry,omitempty"`
	Body        string    `json:"body"`
	Logo        string    `json:"logo,omitempty"`
	Metrics     []Metric  `json:"metrics,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	Status      Status    `json:"status"`
	SEO         SEO       `json:"seo"`
}

// PriceTier is one entry of a product's pricing table.
type PriceTier struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Period   string   `json:"period,omitempty"`
	Features []string `json:"features,omitempty"`
	Popular  bool     `json:"popular,omitempty"`
}

// FAQItem is a question/answer pair shown on a product page.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Product is a marketed product or service offering.
type Product struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	ShortDesc   string      `json:"shortDesc,omitempty"`
	Description string      `json:"description"`
	Category    string      `json:"category,omitempty"`
	HeroImage   string      `json:"heroImage,omitempty"`
	Gallery     []string    `json:"gallery,omitempty"`
	Features    []string    `json:"features,omitempty"`
	Benefits    []string    `json:"benefits,omitempty"`
	PriceTiers  []PriceTier `json:"priceTiers,omitempty"`
	FAQ         []FAQItem   `json:"faq,omitempty"`
	Status      Status      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	SEO         SEO         `json:"seo"`
}

// Testimonial is a customer quote displayed on public pages.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position,omitempty"`
	Company   string    `json:"company,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Featured  bool      `json:"featured,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	SEO       SEO       `json:"seo"`
}

// MediaFile is a locally tracked reference to an uploaded or built-in asset.
// A record is valid only while a matching object exists in the remote store;
// validity is checked by the mediasync reconciliation pass, not continuously.
type MediaFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Type       MediaType `json:"type"`
	Size       int64     `json:"size,omitempty"`
	Deletable  bool      `json:"deletable"`
	IsStatic   bool      `json:"isStatic,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
	Dimensions string    `json:"dimensions,omitempty"`
}

// ContactInfo holds the site-wide contact details shown in the footer.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Settings is the singleton site configuration. It is read and written as a
// whole document; partial updates are merged in memory by the repository.
type Settings struct {
	SiteName        string      `json:"siteName"`
	Tagline         string      `json:"tagline,omitempty"`
	Logo            string      `json:"logo,omitempty"`
	Favicon         string      `json:"favicon,omitempty"`
	MaintenanceMode bool        `json:"maintenanceMode"`
	Contact         ContactInfo `json:"contact"`
	SEO             SEO         `json:"seo"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
