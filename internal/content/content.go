// Package content loads the static landing-page tables from YAML.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"go-landing-backend/internal/domain"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the name of the catalog document inside the content FS
const CatalogFile = "catalog.yaml"

//go:embed catalog.yaml
var embedded embed.FS

// Embedded returns the catalog shipped with the binary
func Embedded() fs.FS {
	return embedded
}

// Load parses and checks the catalog document found in fsys
func Load(fsys fs.FS) (*domain.Catalog, error) {
	data, err := fs.ReadFile(fsys, CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", CatalogFile, err)
	}
	return Parse(data)
}

// Parse decodes a catalog document. Unknown keys are rejected.
func Parse(data []byte) (*domain.Catalog, error) {
	var catalog domain.Catalog
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("content: decode catalog: %w", err)
	}
	if err := check(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func check(c *domain.Catalog) error {
	if strings.TrimSpace(c.BrandName) == "" {
		return fmt.Errorf("content: brand_name is required")
	}

	ids := make(map[string]bool)
	unique := func(section, id string) error {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("content: %s entry with empty id", section)
		}
		key := section + "/" + id
		if ids[key] {
			return fmt.Errorf("content: duplicate %s id %q", section, id)
		}
		ids[key] = true
		return nil
	}

	for _, o := range c.ContactOptions {
		if err := unique("contact_options", o.ID); err != nil {
			return err
		}
		if err := checkLink(o.Href, "https", "tel", "mailto"); err != nil {
			return fmt.Errorf("content: contact option %q: %w", o.ID, err)
		}
	}
	for _, f := range c.Features {
		if err := unique("features", f.ID); err != nil {
			return err
		}
	}
	for _, s := range c.Services {
		if err := unique("services", s.ID); err != nil {
			return err
		}
	}
	for _, l := range c.Locations {
		if err := unique("locations", l.ID); err != nil {
			return err
		}
		if err := checkLink(l.MapLink, "https"); err != nil {
			return fmt.Errorf("content: location %q: %w", l.ID, err)
		}
	}
	for _, n := range c.Navigation {
		if !strings.HasPrefix(n.Href, "#") {
			return fmt.Errorf("content: navigation %q must be an in-page anchor", n.Name)
		}
	}
	return nil
}

func checkLink(raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid link %q: %w", raw, err)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("link %q must use one of %v", raw, schemes)
}
