package handlers

import (
	"net/http"

	"coursecms/internal/application/usecase"
	"coursecms/internal/domain"
	"coursecms/internal/platform/logger"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	catalog *usecase.CatalogUseCase
	log     *logger.Logger
}

func NewCourseHandler(catalog *usecase.CatalogUseCase, log *logger.Logger) *CourseHandler {
	return &CourseHandler{catalog: catalog, log: log}
}

type courseReq struct {
	CourseID domain.Text         `json:"courseId"`
	Course   *domain.CourseInput `json:"course"`
}

type lessonReq struct {
	CourseID domain.Text         `json:"courseId"`
	LessonID domain.Text         `json:"lessonId"`
	Lesson   *domain.LessonInput `json:"lesson"`
}

type lessonPatchReq struct {
	CourseID domain.Text         `json:"courseId"`
	LessonID domain.Text         `json:"lessonId"`
	Lesson   *domain.LessonPatch `json:"lesson"`
}

// GET /api/courses
func (h *CourseHandler) ListPublic(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"courses": h.catalog.PublicCourses(c)})
}

// POST /api/admin/courses
func (h *CourseHandler) ListAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.AdminCourses(c))
}

// POST /api/admin/courses/create
func (h *CourseHandler) Create(c *gin.Context) {
	req := bind[courseReq](c)
	if req.Course == nil {
		respondError(c, h.log, domain.ErrInvalidPayload, "Failed to create course")
		return
	}

	course, err := h.catalog.CreateCourse(c, *req.Course)
	if err != nil {
		respondError(c, h.log, err, "Failed to save course")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "course": course})
}

// POST /api/admin/courses/update
func (h *CourseHandler) Update(c *gin.Context) {
	req := bind[courseReq](c)
	if req.Course == nil {
		respondError(c, h.log, domain.ErrInvalidPayload, "Failed to update course")
		return
	}

	course, err := h.catalog.UpdateCourse(c, string(req.CourseID), *req.Course)
	if err != nil {
		respondError(c, h.log, err, "Failed to update course")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "course": course})
}

// POST /api/admin/courses/delete
func (h *CourseHandler) Delete(c *gin.Context) {
	req := bind[courseReq](c)
	if err := h.catalog.DeleteCourse(c, string(req.CourseID)); err != nil {
		respondError(c, h.log, err, "Failed to delete course")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/admin/lessons/create
func (h *CourseHandler) CreateLesson(c *gin.Context) {
	req := bind[lessonReq](c)
	if req.Lesson == nil {
		respondError(c, h.log, domain.ErrInvalidPayload, "Failed to create lesson")
		return
	}

	lesson, err := h.catalog.CreateLesson(c, string(req.CourseID), *req.Lesson)
	if err != nil {
		respondError(c, h.log, err, "Failed to save lesson")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "lesson": lesson})
}

// POST /api/admin/lessons/update
func (h *CourseHandler) UpdateLesson(c *gin.Context) {
	req := bind[lessonPatchReq](c)
	var patch domain.LessonPatch
	if req.Lesson != nil {
		patch = *req.Lesson
	}

	lesson, err := h.catalog.UpdateLesson(c, string(req.CourseID), string(req.LessonID), patch)
	if err != nil {
		respondError(c, h.log, err, "Failed to update lesson")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "lesson": lesson})
}

// POST /api/admin/lessons/delete
func (h *CourseHandler) DeleteLesson(c *gin.Context) {
	req := bind[lessonReq](c)
	if err := h.catalog.DeleteLesson(c, string(req.CourseID), string(req.LessonID)); err != nil {
		respondError(c, h.log, err, "Failed to delete lesson")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/lesson/:lessonId/redirect
// Public on purpose: the link is only revealed one lesson at a time.
func (h *CourseHandler) Redirect(c *gin.Context) {
	url, err := h.catalog.LessonRedirect(c, c.Param("lessonId"))
	if err != nil {
		respondError(c, h.log, err, "Failed to fetch lesson")
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirectUrl": url})
}
