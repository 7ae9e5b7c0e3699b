package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	viewerMiddleware := standardMiddleware.Append(app.withViewer)
	authMiddleware := standardMiddleware.Append(app.requireAuth)

	mux := pat.New()

	// Users
	mux.Post("/users/register", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/users/login", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/users/refresh", standardMiddleware.ThenFunc(app.userHandler.RefreshSession))
	mux.Get("/users/me", authMiddleware.ThenFunc(app.userHandler.GetMe))
	mux.Add(http.MethodPatch, "/users/avatar/:id", authMiddleware.ThenFunc(app.uploadHandler.UpdateAvatar))

	// Offers
	mux.Get("/offers/premium/:city", viewerMiddleware.ThenFunc(app.offerHandler.GetPremiumOffers))
	mux.Get("/offers/:id", viewerMiddleware.ThenFunc(app.offerHandler.GetOfferByID))
	mux.Get("/offers", viewerMiddleware.ThenFunc(app.offerHandler.GetOffers))
	mux.Post("/offers/photos", authMiddleware.ThenFunc(app.uploadHandler.UploadOfferPhotos))
	mux.Post("/offers", authMiddleware.ThenFunc(app.offerHandler.CreateOffer))
	mux.Add(http.MethodPatch, "/offers/:id", authMiddleware.ThenFunc(app.offerHandler.UpdateOffer))
	mux.Del("/offers/:id", authMiddleware.ThenFunc(app.offerHandler.DeleteOffer))

	// Comments
	mux.Get("/comments/:offerId", standardMiddleware.ThenFunc(app.commentHandler.GetCommentsByOfferID))
	mux.Post("/comments/:offerId", authMiddleware.ThenFunc(app.commentHandler.CreateComment))

	// Favorites
	mux.Get("/favorites", authMiddleware.ThenFunc(app.favoriteHandler.GetFavorites))
	mux.Post("/favorites/:offerId/:status", authMiddleware.ThenFunc(app.favoriteHandler.ChangeFavoriteStatus))

	// Device tokens for push notifications
	mux.Post("/notifications/token", authMiddleware.ThenFunc(app.userHandler.CreateDeviceToken))

	// Uploaded images saved to local disk
	mux.Get("/images/:folder/:filename", standardMiddleware.ThenFunc(app.uploadHandler.ServeImage))

	return mux
}
