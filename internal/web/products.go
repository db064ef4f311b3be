package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/spf13/cast"

	"github.com/erazemk/blagajna/internal/catalog"
	"github.com/erazemk/blagajna/internal/imaging"
	"github.com/erazemk/blagajna/internal/model"
	"github.com/erazemk/blagajna/internal/store"
)

// Listing presentations.
const (
	viewList   = "list"
	viewCard   = "card"
	viewKanban = "kanban"
)

func listView(r *http.Request) string {
	switch v := r.URL.Query().Get("view"); v {
	case viewCard, viewKanban:
		return v
	default:
		return viewList
	}
}

// ProductsPage handles GET /products.
func (s *Server) ProductsPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	products := catalog.FilterProducts(s.Catalog.Products(r.Context()), query, "")
	photos, err := store.HasProductImages(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list product images", "error", err)
	}

	s.Templates.Render(w, "products.html", &struct {
		PageData
		View     string
		Query    string
		Products []model.Product
		Buckets  catalog.ProductBuckets
		Photos   map[string]bool
	}{
		PageData: s.page(r, "products", "products"),
		View:     listView(r),
		Query:    query,
		Products: products,
		Buckets:  catalog.PartitionProducts(products),
		Photos:   photos,
	})
}

// productFromForm reads the product fields. Name and price are required.
func productFromForm(r *http.Request) (model.Product, string) {
	p := model.Product{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Image:       strings.TrimSpace(r.FormValue("image")),
	}
	if p.Name == "" || r.FormValue("price") == "" {
		return p, "requiredFields"
	}

	var err error
	if p.Price, err = formNumber(r.FormValue("price")); err != nil || p.Price < 0 {
		return p, "invalidInput"
	}
	if v := r.FormValue("stock"); v != "" {
		if p.Stock, err = cast.ToIntE(v); err != nil {
			return p, "invalidInput"
		}
	}
	return p, ""
}

// ProductCreateSubmit handles POST /products.
func (s *Server) ProductCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleManager) {
		return
	}
	claims := GetWebClaims(r.Context())

	p, problem := productFromForm(r)
	if problem != "" {
		redirectNotice(w, r, "/products", "error", problem)
		return
	}

	created, err := s.Catalog.CreateProduct(r.Context(), p)
	if err != nil {
		slog.Error("failed to create product", "error", err)
		redirectNotice(w, r, "/products", "error", "backendUnavailable")
		return
	}

	slog.Info("product created", "user", claims.Email, "product", created.Name, "id", created.ID)
	redirectNotice(w, r, "/products", "notice", "saved")
}

// ProductEditPage handles GET /products/{id}.
func (s *Server) ProductEditPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	p, err := s.Catalog.Product(r.Context(), id)
	if err != nil {
		http.Error(w, s.Prefs.Translate("notFound"), http.StatusNotFound)
		return
	}

	photos, err := store.HasProductImages(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list product images", "error", err)
	}

	data := s.page(r, "editProduct", "products")
	data.Title = p.Name
	s.Templates.Render(w, "product_edit.html", &struct {
		PageData
		Product  *model.Product
		HasPhoto bool
	}{
		PageData: data,
		Product:  p,
		HasPhoto: photos[id],
	})
}

// ProductUpdateSubmit handles POST /products/{id}.
func (s *Server) ProductUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleManager) {
		return
	}
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")
	back := "/products/" + id

	p, problem := productFromForm(r)
	if problem != "" {
		redirectNotice(w, r, back, "error", problem)
		return
	}
	p.ID = id

	if _, err := s.Catalog.UpdateProduct(r.Context(), id, p); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, s.Prefs.Translate("notFound"), http.StatusNotFound)
			return
		}
		slog.Error("failed to update product", "id", id, "error", err)
		redirectNotice(w, r, back, "error", "backendUnavailable")
		return
	}

	slog.Info("product updated", "user", claims.Email, "product", p.Name, "id", id)
	redirectNotice(w, r, back, "notice", "saved")
}

// ProductDeleteSubmit handles POST /products/{id}/delete. The local photo
// goes with the product.
func (s *Server) ProductDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleManager) {
		return
	}
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	if err := s.Catalog.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, s.Prefs.Translate("notFound"), http.StatusNotFound)
			return
		}
		slog.Error("failed to delete product", "id", id, "error", err)
		redirectNotice(w, r, "/products/"+id, "error", "backendUnavailable")
		return
	}
	if err := store.DeleteProductImage(r.Context(), s.DB, id); err != nil {
		slog.Error("failed to delete product image", "id", id, "error", err)
	}

	slog.Info("product deleted", "user", claims.Email, "id", id)
	redirectNotice(w, r, "/products", "notice", "deleted")
}

// ProductImageSubmit handles POST /products/{id}/image.
func (s *Server) ProductImageSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.allow(w, r, model.RoleManager) {
		return
	}
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")
	back := "/products/" + id

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes)
	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
		redirectNotice(w, r, back, "error", "invalidInput")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		redirectNotice(w, r, back, "error", "requiredFields")
		return
	}
	defer file.Close()

	photo, err := imaging.ProductPhoto(file)
	if err != nil {
		slog.Warn("rejected product photo", "id", id, "error", err)
		redirectNotice(w, r, back, "error", "invalidInput")
		return
	}

	if err := store.SetProductImage(r.Context(), s.DB, id, photo.Data, photo.MIME); err != nil {
		slog.Error("failed to save image", "error", err)
		redirectNotice(w, r, back, "error", "error")
		return
	}

	slog.Info("product photo uploaded", "user", claims.Email, "id", id, "bytes", len(photo.Data))
	redirectNotice(w, r, back, "notice", "saved")
}

// ProductImageGet handles GET /products/{id}/image.
func (s *Server) ProductImageGet(w http.ResponseWriter, r *http.Request) {
	data, mime, err := store.GetProductImage(r.Context(), s.DB, r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get image", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}
