package settings

// SiteSettings is the editable site-wide record: one feature flag for the
// documents section plus the SEO/head metadata.
type SiteSettings struct {
	ShowDocuments  bool   `json:"show_documents_section"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	SEOKeywords    string `json:"seo_keywords"`
	FaviconURL     string `json:"favicon_url"`
	OGImageURL     string `json:"og_image_url"`
}

// Defaults returns the values used until the remote settings have been
// fetched at least once.
func Defaults() SiteSettings {
	return SiteSettings{
		ShowDocuments:  true,
		SEOTitle:       "Безопасность вашего бассейна под контролем",
		SEODescription: "Передовые системы защиты для посетителей бассейнов. Система оповещения опасности утопления производства компании «Sentag AB» − современное решение для обеспечения безопасности плавания.",
		SEOKeywords:    "СООУ, система безопасности бассейнов, Sentag AB",
		FaviconURL:     "/static/favicon.png",
		OGImageURL:     "/static/og-image.png",
	}
}

// MetaTag is one derived document-head element.
type MetaTag struct {
	Attr    string `json:"attr"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// HeadMeta is everything the page head renders from the settings.
type HeadMeta struct {
	Title      string    `json:"title"`
	FaviconURL string    `json:"favicon_url"`
	Tags       []MetaTag `json:"tags"`
}

// Meta derives the document-head metadata from a settings record.
func Meta(s SiteSettings) HeadMeta {
	return HeadMeta{
		Title:      s.SEOTitle,
		FaviconURL: s.FaviconURL,
		Tags: []MetaTag{
			{Attr: "name", Name: "description", Content: s.SEODescription},
			{Attr: "name", Name: "keywords", Content: s.SEOKeywords},
			{Attr: "property", Name: "og:title", Content: s.SEOTitle},
			{Attr: "property", Name: "og:description", Content: s.SEODescription},
			{Attr: "property", Name: "og:image", Content: s.OGImageURL},
			{Attr: "name", Name: "twitter:title", Content: s.SEOTitle},
			{Attr: "name", Name: "twitter:description", Content: s.SEODescription},
			{Attr: "name", Name: "twitter:image", Content: s.OGImageURL},
		},
	}
}
