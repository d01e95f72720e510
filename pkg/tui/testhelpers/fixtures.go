package testhelpers

import (
	"github.com/blogpanel/blogpanel/pkg/models"
)

// Catalog returns a small valid catalog with a distinct default for content width
func Catalog() *models.Catalog {
	return &models.Catalog{
		FontFamilies: []models.Option{
			{Title: "Open Sans", Value: "Open Sans", ClassName: "open-sans"},
			{Title: "Ubuntu", Value: "Ubuntu", ClassName: "ubuntu"},
			{Title: "Days One", Value: "Days One", ClassName: "days-one"},
		},
		FontColors: []models.Option{
			{Title: "Black", Value: "#000000", ClassName: "font-black"},
			{Title: "Gray", Value: "#C4C4C4", ClassName: "font-gray"},
			{Title: "Pink", Value: "#FEAFE8", ClassName: "font-pink"},
		},
		BackgroundColors: []models.Option{
			{Title: "White", Value: "#FFFFFF", ClassName: "bg-white"},
			{Title: "Black", Value: "#000000", ClassName: "bg-black"},
		},
		ContentWidths: []models.Option{
			{Title: "Wide", Value: "1394px", ClassName: "width-wide"},
			{Title: "Narrow", Value: "948px", ClassName: "width-narrow"},
		},
		FontSizes: []models.Option{
			{Title: "18px", Value: "18px", ClassName: "font-size-18"},
			{Title: "25px", Value: "25px", ClassName: "font-size-25"},
			{Title: "38px", Value: "38px", ClassName: "font-size-38"},
		},
		Defaults: map[string]string{
			"content_width": "948px",
		},
	}
}

// Article returns a short two-paragraph article
func Article() *models.Article {
	return &models.Article{
		Title: "Harbor notes",
		Paragraphs: []string{
			"The ferries stayed in port all afternoon while the wind pushed spray over the breakwater.",
			"By evening the lamps along the pier were lit and the cafe served soup to anyone who came in.",
		},
	}
}
