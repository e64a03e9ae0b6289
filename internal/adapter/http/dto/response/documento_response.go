package response

import "sapataria_xpto/internal/usecase/interfaces"

type PDFObjectResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type PDFListResponse struct {
	Success bool                `json:"success"`
	PDFs    []PDFObjectResponse `json:"pdfs"`
}

func FromStoredObjects(objects []interfaces.StoredObject) PDFListResponse {
	pdfs := make([]PDFObjectResponse, 0, len(objects))
	for _, o := range objects {
		pdfs = append(pdfs, PDFObjectResponse{Key: o.Key, URL: o.URL})
	}
	return PDFListResponse{Success: true, PDFs: pdfs}
}
