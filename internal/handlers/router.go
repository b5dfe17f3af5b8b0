package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yasseriouss/yasser-portfolio-new/internal/cache"
	"github.com/yasseriouss/yasser-portfolio-new/internal/middleware"
	"github.com/yasseriouss/yasser-portfolio-new/internal/store"
)

// RouterDeps is everything the route tree needs; main builds it once.
type RouterDeps struct {
	Store         *store.Store
	Cache         *cache.Cache
	JWTSecret     string
	JWTExpiresMin int

	OAuthClientID   string
	OAuthSecret     string
	OAuthRedirect   string
	FrontendBaseURL string
}

// Register mounts the full route tree: public portfolio reads plus review
// submission, auth, and the admin-gated CRUD surface.
func Register(app *fiber.App, d RouterDeps) {
	portfolioH := NewPortfolioHandler(d.Store, d.Cache)
	contentH := NewContentHandler(d.Store, d.Cache)
	authH := &AuthHandler{Store: d.Store, JWTSecret: d.JWTSecret, Expires: d.JWTExpiresMin}
	oauthH := &OAuthHandler{
		Store:           d.Store,
		JWTSecret:       d.JWTSecret,
		Expires:         d.JWTExpiresMin,
		ClientID:        d.OAuthClientID,
		ClientSecret:    d.OAuthSecret,
		RedirectURL:     d.OAuthRedirect,
		FrontendBaseURL: d.FrontendBaseURL,
	}

	api := app.Group("/api")

	// auth
	api.Get("/auth/me", authH.Me)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/auth/oauth/start", oauthH.Start)
	api.Get("/auth/oauth/callback", oauthH.Callback)

	// public portfolio
	pf := api.Group("/portfolio")
	pf.Get("/personal-info", portfolioH.GetPersonalInfo)
	pf.Get("/experiences", portfolioH.GetExperiences)
	pf.Get("/projects", portfolioH.GetProjects)
	pf.Get("/projects/featured", portfolioH.GetFeaturedProjects)
	pf.Get("/skills", portfolioH.GetSkills)
	pf.Get("/education", portfolioH.GetEducation)
	pf.Get("/testimonials", portfolioH.GetTestimonials)
	pf.Get("/talents", portfolioH.GetTalents)
	pf.Get("/reviews", portfolioH.GetApprovedReviews)
	pf.Get("/reviews/stats", portfolioH.GetReviewStats)
	pf.Post("/reviews", portfolioH.SubmitReview)

	// admin only
	admin := api.Group("/admin",
		middleware.JWTFromCookie(d.JWTSecret),
		middleware.AttachJWTLocals(),
		middleware.RequireRoles("admin"),
	)

	admin.Put("/personal-info", contentH.UpsertPersonalInfo)

	admin.Get("/experiences", contentH.ListExperiences)
	admin.Get("/experiences/:id", contentH.GetExperience)
	admin.Post("/experiences", contentH.CreateExperience)
	admin.Put("/experiences/:id", contentH.UpdateExperience)
	admin.Delete("/experiences/:id", contentH.DeleteExperience)

	admin.Get("/projects", contentH.ListProjects)
	admin.Get("/projects/:id", contentH.GetProject)
	admin.Post("/projects", contentH.CreateProject)
	admin.Put("/projects/:id", contentH.UpdateProject)
	admin.Delete("/projects/:id", contentH.DeleteProject)

	admin.Get("/skills", contentH.ListSkills)
	admin.Get("/skills/:id", contentH.GetSkill)
	admin.Post("/skills", contentH.CreateSkill)
	admin.Put("/skills/:id", contentH.UpdateSkill)
	admin.Delete("/skills/:id", contentH.DeleteSkill)

	admin.Get("/education", contentH.ListEducation)
	admin.Get("/education/:id", contentH.GetEducationEntry)
	admin.Post("/education", contentH.CreateEducation)
	admin.Put("/education/:id", contentH.UpdateEducation)
	admin.Delete("/education/:id", contentH.DeleteEducation)

	admin.Get("/testimonials", contentH.ListTestimonials)
	admin.Get("/testimonials/:id", contentH.GetTestimonial)
	admin.Post("/testimonials", contentH.CreateTestimonial)
	admin.Put("/testimonials/:id", contentH.UpdateTestimonial)
	admin.Delete("/testimonials/:id", contentH.DeleteTestimonial)

	admin.Get("/talents", contentH.ListTalents)
	admin.Get("/talents/:id", contentH.GetTalent)
	admin.Post("/talents", contentH.CreateTalent)
	admin.Put("/talents/:id", contentH.UpdateTalent)
	admin.Delete("/talents/:id", contentH.DeleteTalent)

	admin.Get("/reviews", contentH.ListAllReviews)
	admin.Patch("/reviews/:id/approve", contentH.ApproveReview)
	admin.Patch("/reviews/:id/reply", contentH.ReplyToReview)
	admin.Delete("/reviews/:id", contentH.DeleteReview)
}
