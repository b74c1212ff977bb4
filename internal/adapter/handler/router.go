package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// NewRouter wires every HTTP surface onto one router. Cart routes take
// OptionalAuth so guests can shop with an X-Cart-ID header; checkout
// and the admin panel require a token.
func NewRouter(auth *Auth, authH *AuthHandler, catalogH *CatalogHandler, cartH *CartHandler, adminH *AdminHandler) *httprouter.Router {
	router := httprouter.New()

	router.GET("/health", healthCheck)

	router.POST("/api/auth/login", authH.Login)
	router.POST("/api/auth/signup", authH.Signup)
	router.GET("/api/auth/me", auth.Authenticate(authH.Me))
	router.POST("/api/auth/logout", auth.Authenticate(authH.Logout))

	router.GET("/api/products", catalogH.ListProducts)
	router.GET("/api/products/:productid", catalogH.GetProduct)
	// httprouter cannot mix a static child with :productid, so the
	// facet list lives one level up.
	router.GET("/api/filters", catalogH.FilterOptions)

	router.GET("/api/cart", auth.OptionalAuth(cartH.GetCart))
	router.POST("/api/cart/items", auth.OptionalAuth(cartH.AddItem))
	router.PUT("/api/cart/items/:productid", auth.OptionalAuth(cartH.UpdateItem))
	router.DELETE("/api/cart/items/:productid", auth.OptionalAuth(cartH.RemoveItem))
	router.DELETE("/api/cart", auth.OptionalAuth(cartH.ClearCart))
	router.POST("/api/cart/checkout", auth.Authenticate(cartH.Checkout))

	admin := func(h httprouter.Handle) httprouter.Handle {
		return auth.Authenticate(auth.RequireAdmin(h))
	}
	router.GET("/api/admin/products", admin(adminH.ListProducts))
	router.POST("/api/admin/products", admin(adminH.CreateProduct))
	router.PUT("/api/admin/products/:productid", admin(adminH.UpdateProduct))
	router.DELETE("/api/admin/products/:productid", admin(adminH.DeleteProduct))
	router.GET("/api/admin/users", admin(adminH.ListUsers))
	router.PATCH("/api/admin/users/:userid/status", admin(adminH.SetUserStatus))
	router.DELETE("/api/admin/users/:userid", admin(adminH.DeleteUser))
	router.GET("/api/admin/orders", admin(adminH.ListOrders))
	router.PATCH("/api/admin/orders/:orderid/status", admin(adminH.SetOrderStatus))

	return router
}

func healthCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
