package domain

import "context"

// ContactOption is a hero shortcut (WhatsApp, call, e-mail, visit)
type ContactOption struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	SubLabel string `json:"sub_label,omitempty" yaml:"sub_label"`
	Href     string `json:"href" yaml:"href"`
	External bool   `json:"external" yaml:"external"`
}

// Feature is a value-proposition card
type Feature struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// ServiceItem is an entry of the service catalog
type ServiceItem struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Seasonal    bool   `json:"seasonal,omitempty" yaml:"seasonal"`
}

// Location is a physical outlet, office or factory
type Location struct {
	ID          string `json:"id" yaml:"id"`
	Tag         string `json:"tag" yaml:"tag"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	MapLink     string `json:"map_link" yaml:"map_link"`
}

// NavLink is an in-page anchor used by navigation and footer
type NavLink struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}

// BusinessContact is the fixed contact block shown in the form aside and footer
type BusinessContact struct {
	Phone        string `json:"phone" yaml:"phone"`
	PhoneHref    string `json:"phone_href" yaml:"phone_href"`
	Email        string `json:"email" yaml:"email"`
	EmailHref    string `json:"email_href" yaml:"email_href"`
	Address      string `json:"address" yaml:"address"`
	MapHref      string `json:"map_href" yaml:"map_href"`
	WhatsAppHref string `json:"whatsapp_href" yaml:"whatsapp_href"`
}

// Hero is the headline block
type Hero struct {
	Title        string   `json:"title" yaml:"title"`
	Highlight    string   `json:"highlight" yaml:"highlight"`
	Paragraphs   []string `json:"paragraphs" yaml:"paragraphs"`
	ResponseTime string   `json:"response_time" yaml:"response_time"`
}

// Catalog is every static table the landing page renders
type Catalog struct {
	BrandName      string          `json:"brand_name" yaml:"brand_name"`
	Tagline        string          `json:"tagline" yaml:"tagline"`
	Hero           Hero            `json:"hero" yaml:"hero"`
	ContactOptions []ContactOption `json:"contact_options" yaml:"contact_options"`
	Features       []Feature       `json:"features" yaml:"features"`
	Services       []ServiceItem   `json:"services" yaml:"services"`
	Locations      []Location      `json:"locations" yaml:"locations"`
	Navigation     []NavLink       `json:"navigation" yaml:"navigation"`
	Contact        BusinessContact `json:"contact" yaml:"contact"`
}

// CatalogUsecase exposes the static landing content
type CatalogUsecase interface {
	GetCatalog(ctx context.Context) *Catalog
}
