package routes

import (
	"sapataria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathUpload = "/upload"

func addUploadRoutes(rg *gin.RouterGroup, uploadHandler *handlers.UploadHandler) {
	upload := rg.Group(PathUpload)
	{
		upload.POST("/fotos", uploadHandler.UploadFotos)
	}
}
