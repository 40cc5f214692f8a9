package main

import (
	"log"
	"net/http"

	_ "github.com/Belzex/recommenderSystem6/docs" // swagger docs

	"github.com/Belzex/recommenderSystem6/internal/cache"
	"github.com/Belzex/recommenderSystem6/internal/config"
	"github.com/Belzex/recommenderSystem6/internal/dataset"
	"github.com/Belzex/recommenderSystem6/internal/db"
	"github.com/Belzex/recommenderSystem6/internal/engine"
	"github.com/Belzex/recommenderSystem6/internal/handler"
	"github.com/Belzex/recommenderSystem6/internal/repository"
	"github.com/Belzex/recommenderSystem6/internal/service"
	"github.com/Belzex/recommenderSystem6/internal/simcache"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title RecommenderSystem6 API
// @version 1.0
// @description Recomendador de películas user-kNN (Pearson) sobre MovieLens
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// dataset: sin esto el motor no puede responder nada, así que
	// cualquier problema al cargar es fatal
	data, err := dataset.Load(cfg.DataDir, cfg.MaxMovies, cfg.MaxRatings, cfg.MaxUsers)
	if err != nil {
		log.Fatalf("[dataset] %v", err)
	}
	log.Printf("[dataset] movies=%d users=%d ratings=%d", data.NumMovies(), data.NumUsers(), data.NumRatings())

	// cache de vecindarios en disco (líneas malas se saltan)
	simc, err := simcache.Open(cfg.CachePath)
	if err != nil {
		log.Fatalf("[simcache] %v", err)
	}
	if simc.Skipped() > 0 {
		log.Printf("[simcache] %d líneas malformadas saltadas", simc.Skipped())
	}
	log.Printf("[simcache] %d usuarios cacheados", simc.Len())

	// Redis y Mongo son opcionales
	cache.InitRedis(cfg)
	db.InitMongo(cfg)

	var recRepo *repository.RecommendationRepository
	if db.Enabled() {
		recRepo = repository.NewRecommendationRepository()
	}

	// motor
	eng := engine.New(data, simc, cfg.Workers)

	// services
	authSvc := service.NewAuthService(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPassHash)
	movieSvc := service.NewMovieService(data)
	ratingSvc := service.NewRatingService(data)
	recSvc := service.NewRecommendService(data, eng, recRepo, cfg)
	adminSvc := service.NewAdminService(data, simc, eng)

	// handlers
	healthH := handler.NewHealthHandler(data)
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	recH := handler.NewRecommendHandler(recSvc)
	adminH := handler.NewAdminHandler(adminSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", healthH.Health)

	r.Post("/auth/login", authH.Login)

	r.Get("/movies", movieH.Search)
	r.Get("/movies/{id}", movieH.GetMovie)

	r.Get("/users/{id}/ratings", ratingH.GetRatings)
	r.Get("/users/{id}/recommendations", recH.GetRecommendations)
	r.Get("/users/{id}/ws/recommendations", recH.GetRecommendationsWS)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	r.Group(func(r chi.Router) {
		r.Use(handler.JWTAuth(cfg.JWTSecret))
		r.Use(handler.AdminOnly())

		r.Get("/users/{id}/neighborhood", recH.GetNeighborhood)
		r.Get("/users/{id}/recommendations/history", recH.GetHistory)

		handler.MountAdminRoutes(r, adminH)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
