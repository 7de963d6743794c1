package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ukhamba-backend/internal/content"
)

type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) GetPrograms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": content.ProgramCategories()})
}

func (h *ContentHandler) GetProgramByID(c *gin.Context) {
	id := c.Param("id")

	program, category, ok := content.ProgramByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"program": content.RenderProgram(program),
		"category": gin.H{
			"id":    category.ID,
			"title": category.Title,
		},
	})
}

func (h *ContentHandler) GetPages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pages": content.SitePages()})
}
