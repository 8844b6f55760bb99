package settings

type (
	Settings struct {
		MaxFileSizeMB         int      `json:"max_file_size_mb"`
		MaxImagesPerPost      int      `json:"max_images_per_post"`
		MaxImagesPerGeography int      `json:"max_images_per_geography"`
		MaxImageDimension     int      `json:"max_image_dimension"`
		AllowedTypes          []string `json:"allowed_types"`
	}

	UpdateRequest struct {
		MaxFileSizeMB         *int     `json:"max_file_size_mb"`
		MaxImagesPerPost      *int     `json:"max_images_per_post"`
		MaxImagesPerGeography *int     `json:"max_images_per_geography"`
		MaxImageDimension     *int     `json:"max_image_dimension"`
		AllowedTypes          []string `json:"allowed_types"`
	}
)
