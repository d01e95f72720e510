package examples

import "github.com/blogpanel/blogpanel/pkg/models"

// Catalog returns the built-in option catalog used when no catalog file is configured
func Catalog() *models.Catalog {
	return &models.Catalog{
		FontFamilies: []models.Option{
			{Title: "Open Sans", Value: "Open Sans", ClassName: "open-sans"},
			{Title: "Ubuntu", Value: "Ubuntu", ClassName: "ubuntu"},
			{Title: "Cormorant Garamond", Value: "Cormorant Garamond", ClassName: "cormorant-garamond"},
			{Title: "Days One", Value: "Days One", ClassName: "days-one"},
			{Title: "Merriweather", Value: "Merriweather", ClassName: "merriweather"},
		},
		FontColors: []models.Option{
			{Title: "Black", Value: "#000000", ClassName: "font-black"},
			{Title: "White", Value: "#FFFFFF", ClassName: "font-white"},
			{Title: "Gray", Value: "#C4C4C4", ClassName: "font-gray"},
			{Title: "Pink", Value: "#FEAFE8", ClassName: "font-pink"},
			{Title: "Hot pink", Value: "#FD24AF", ClassName: "font-hot-pink"},
			{Title: "Orange", Value: "#FD9800", ClassName: "font-orange"},
			{Title: "Yellow", Value: "#FFC802", ClassName: "font-yellow"},
			{Title: "Green", Value: "#80D994", ClassName: "font-green"},
			{Title: "Light blue", Value: "#6FC1FD", ClassName: "font-light-blue"},
			{Title: "Blue", Value: "#5F4BFF", ClassName: "font-blue"},
			{Title: "Purple", Value: "#9B59B6", ClassName: "font-purple"},
		},
		BackgroundColors: []models.Option{
			{Title: "White", Value: "#FFFFFF", ClassName: "bg-white"},
			{Title: "Black", Value: "#000000", ClassName: "bg-black"},
			{Title: "Gray", Value: "#C4C4C4", ClassName: "bg-gray"},
			{Title: "Pink", Value: "#FEAFE8", ClassName: "bg-pink"},
			{Title: "Hot pink", Value: "#FD24AF", ClassName: "bg-hot-pink"},
			{Title: "Orange", Value: "#FD9800", ClassName: "bg-orange"},
			{Title: "Yellow", Value: "#FFC802", ClassName: "bg-yellow"},
			{Title: "Green", Value: "#80D994", ClassName: "bg-green"},
			{Title: "Light blue", Value: "#6FC1FD", ClassName: "bg-light-blue"},
			{Title: "Blue", Value: "#5F4BFF", ClassName: "bg-blue"},
			{Title: "Purple", Value: "#9B59B6", ClassName: "bg-purple"},
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
	}
}
