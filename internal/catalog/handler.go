package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadmap-backend/internal/roadmap"
	"roadmap-backend/internal/shared/server/respond"
)

type Handler struct {
	Catalog roadmap.Catalog
}

func NewHandler(c roadmap.Catalog) *Handler {
	return &Handler{Catalog: c}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/regions", h.regions)
	rg.GET("/regions/:id", h.region)
	rg.GET("/resources", h.resources)
}

type regionResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	NameUa    string   `json:"nameUa"`
	Neighbors []string `json:"neighbors"`
}

func toRegionResponse(r roadmap.Region) regionResponse {
	return regionResponse{
		ID:        r.ID,
		Name:      r.Name,
		NameUa:    r.NameUa,
		Neighbors: roadmap.Neighbors(r.ID),
	}
}

func (h *Handler) regions(c *gin.Context) {
	all := roadmap.Regions()
	items := make([]regionResponse, 0, len(all))
	for _, r := range all {
		items = append(items, toRegionResponse(r))
	}
	respond.OK(c, gin.H{"items": items})
}

func (h *Handler) region(c *gin.Context) {
	id := c.Param("id")
	if !roadmap.IsKnownRegion(id) {
		respond.Error(c, http.StatusNotFound, "not_found", "region not found", nil)
		return
	}
	respond.OK(c, toRegionResponse(roadmap.Region{
		ID:     id,
		Name:   roadmap.RegionName(id),
		NameUa: roadmap.RegionNameUa(id),
	}))
}

// resources serves the catalog grouped by category. ?type= narrows it to
// one resource type across all groups.
func (h *Handler) resources(c *gin.Context) {
	if typ := c.Query("type"); typ != "" {
		if !knownTypes[roadmap.ResourceType(typ)] {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown resource type", []gin.H{{"field": "type", "issue": "unknown"}})
			return
		}
		items := []roadmap.Resource{}
		for _, r := range h.Catalog.All() {
			if r.Type == roadmap.ResourceType(typ) {
				items = append(items, r)
			}
		}
		respond.OK(c, gin.H{"version": h.Catalog.Version, "items": items})
		return
	}
	respond.OK(c, gin.H{
		"version":           h.Catalog.Version,
		"statePrograms":     nonNil(h.Catalog.StatePrograms),
		"prostheticCenters": nonNil(h.Catalog.ProstheticCenters),
		"hospitals":         nonNil(h.Catalog.Hospitals),
		"rehabCenters":      nonNil(h.Catalog.RehabCenters),
		"ngoResources":      nonNil(h.Catalog.NGOs),
		"financialAid":      nonNil(h.Catalog.FinancialAid),
		"supportServices":   nonNil(h.Catalog.SupportServices),
		"manufacturers":     nonNil(h.Catalog.Manufacturers),
	})
}

func nonNil(items []roadmap.Resource) []roadmap.Resource {
	if items == nil {
		return []roadmap.Resource{}
	}
	return items
}
