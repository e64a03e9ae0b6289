package response

type UploadResponse struct {
	Success bool     `json:"success"`
	URLs    []string `json:"urls"`
}

func FromUploadURLs(urls []string) UploadResponse {
	if urls == nil {
		urls = []string{}
	}
	return UploadResponse{Success: true, URLs: urls}
}
