package api

import (
	"io"
	"log"
	"net/http"
	"os"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/AymanAbodala/tennis-analysis/pkg/utils"
	"github.com/AymanAbodala/tennis-analysis/pkg/video"
)

func SetRouter() *gin.Engine {
	r := gin.Default()

	apiRoutes := r.Group("/api")

	apiRoutes.GET("/UploadedVideosNames", func(ctx *gin.Context) {
		if names, err := utils.ListDir(viper.GetString("directory.source")); err != nil {
			ctx.Status(http.StatusInternalServerError)
		} else {
			ctx.JSON(http.StatusOK, names)
		}
	})

	apiRoutes.GET("/ReportsNames", func(ctx *gin.Context) {
		if names, err := utils.ListDir(viper.GetString("directory.reports")); err != nil {
			ctx.Status(http.StatusInternalServerError)
		} else {
			ctx.JSON(http.StatusOK, names)
		}
	})

	apiRoutes.GET("/Report", func(ctx *gin.Context) {
		reportName := ctx.Request.URL.Query().Get("name")
		if reportName == "" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		reportPath := path.Join(viper.GetString("directory.reports"), reportName+".json")
		data, err := os.ReadFile(reportPath)
		if err != nil {
			if os.IsNotExist(err) {
				ctx.Status(http.StatusNotFound)
			} else {
				ctx.Status(http.StatusInternalServerError)
			}
			return
		}

		ctx.Data(http.StatusOK, "application/json", data)
	})

	apiRoutes.POST("/Upload", func(ctx *gin.Context) {
		file, fHeader, err := ctx.Request.FormFile("video")
		if err != nil {
			ctx.Status(http.StatusInternalServerError)
			return
		}

		if existNames, err := utils.ListDir(viper.GetString("directory.source")); err != nil {
			ctx.Status(http.StatusInternalServerError)
			return
		} else {
			if utils.InSlice(fHeader.Filename, existNames) {
				ctx.Status(http.StatusNotAcceptable)
				return
			}
		}

		defer file.Close()
		log.Printf("api/Upload: Received new file: name - '%s', size - %v Bytes", fHeader.Filename, fHeader.Size)

		fileBytes, err := io.ReadAll(file)
		if err != nil {
			log.Printf("api/Upload: Could not read request's body, got '%v'", err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		srcFilePath := path.Join(viper.GetString("directory.source"), fHeader.Filename)

		if err = os.WriteFile(srcFilePath, fileBytes, 0444); err != nil {
			log.Printf("api/Upload: Could not write '%s' file, got '%v'", srcFilePath, err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		ctx.Status(http.StatusOK)
	})

	apiRoutes.POST("/Analyze", func(ctx *gin.Context) {
		videoName := ctx.Request.URL.Query().Get("name")
		if videoName == "" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		videoPath := path.Join(viper.GetString("directory.source"), videoName)
		if _, err := os.Stat(videoPath); err != nil {
			if os.IsNotExist(err) {
				ctx.Status(http.StatusNotFound)
			} else {
				ctx.Status(http.StatusInternalServerError)
			}
			return
		}

		go video.Analyze(videoName)
		ctx.Status(http.StatusAccepted)
	})

	apiRoutes.POST("/AnalyzeDetections", func(ctx *gin.Context) {
		detectionsName := ctx.Request.URL.Query().Get("detections")
		actionsName := ctx.Request.URL.Query().Get("actions")
		if detectionsName == "" || actionsName == "" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameters
			return
		}

		if err := video.AnalyzeDetections(detectionsName, actionsName); err != nil {
			log.Printf("api/AnalyzeDetections: Error, got '%v'", err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		ctx.Status(http.StatusOK)
	})

	return r
}
