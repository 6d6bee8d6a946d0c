package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theirongolddev/breakeven/internal/model"
)

const collectionKey = "collection"

func (s *Service) requireCollection(c *gin.Context) {
	col, ok := model.ParseCollection(c.Param("collection"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown collection " + c.Param("collection")})
		return
	}
	c.Set(collectionKey, col)
	c.Next()
}

func collectionOf(c *gin.Context) model.Collection {
	return c.MustGet(collectionKey).(model.Collection)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (s *Service) handleList(c *gin.Context) {
	b := s.store.Snapshot()
	switch collectionOf(c) {
	case model.CollectionOperating:
		c.JSON(http.StatusOK, b.Operating)
	case model.CollectionDirect:
		c.JSON(http.StatusOK, b.Direct)
	case model.CollectionCollateral:
		c.JSON(http.StatusOK, b.Collateral)
	case model.CollectionServices:
		c.JSON(http.StatusOK, b.Services)
	case model.CollectionMarketing:
		c.JSON(http.StatusOK, b.Marketing)
	}
}

// handleCreate appends a line. The server generates an id when the body
// carries none; omitted numeric fields start at zero.
func (s *Service) handleCreate(c *gin.Context) {
	switch collectionOf(c) {
	case model.CollectionOperating:
		var in model.OperatingCost
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		in.ID = s.idOrNew(in.ID)
		s.store.AddOperatingCost(in)
		c.JSON(http.StatusCreated, in)
	case model.CollectionDirect:
		var in model.DirectCost
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		in.ID = s.idOrNew(in.ID)
		s.store.AddDirectCost(in)
		c.JSON(http.StatusCreated, in)
	case model.CollectionCollateral:
		var in model.CollateralCost
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		in.ID = s.idOrNew(in.ID)
		s.store.AddCollateralCost(in)
		c.JSON(http.StatusCreated, in)
	case model.CollectionServices:
		var in model.ProductionService
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		in.ID = s.idOrNew(in.ID)
		s.store.AddProductionService(in)
		c.JSON(http.StatusCreated, in)
	case model.CollectionMarketing:
		var in model.MarketingCost
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		in.ID = s.idOrNew(in.ID)
		s.store.AddMarketingCost(in)
		c.JSON(http.StatusCreated, in)
	}
}

func (s *Service) idOrNew(id string) string {
	if id != "" {
		return id
	}
	return s.newID()
}

// handleUpdate merges a partial body into the line with the given id. An
// unknown id is not an error; the response reports updated=false.
func (s *Service) handleUpdate(c *gin.Context) {
	id := c.Param("id")
	var updated bool

	switch collectionOf(c) {
	case model.CollectionOperating:
		var p model.OperatingCostPatch
		if err := c.ShouldBindJSON(&p); err != nil {
			badRequest(c, err)
			return
		}
		updated = s.store.UpdateOperatingCost(id, p)
	case model.CollectionDirect:
		var p model.DirectCostPatch
		if err := c.ShouldBindJSON(&p); err != nil {
			badRequest(c, err)
			return
		}
		updated = s.store.UpdateDirectCost(id, p)
	case model.CollectionCollateral:
		var p model.CollateralCostPatch
		if err := c.ShouldBindJSON(&p); err != nil {
			badRequest(c, err)
			return
		}
		updated = s.store.UpdateCollateralCost(id, p)
	case model.CollectionServices:
		var p model.ProductionServicePatch
		if err := c.ShouldBindJSON(&p); err != nil {
			badRequest(c, err)
			return
		}
		updated = s.store.UpdateProductionService(id, p)
	case model.CollectionMarketing:
		var p model.MarketingCostPatch
		if err := c.ShouldBindJSON(&p); err != nil {
			badRequest(c, err)
			return
		}
		updated = s.store.UpdateMarketingCost(id, p)
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated, "version": s.store.Version()})
}

// handleRemove is idempotent: removing an unknown id succeeds with
// removed=false.
func (s *Service) handleRemove(c *gin.Context) {
	removed := s.store.Remove(collectionOf(c), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"removed": removed, "version": s.store.Version()})
}

func (s *Service) handleGetAssumptions(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Assumptions())
}

func (s *Service) handlePatchAssumptions(c *gin.Context) {
	var p model.AssumptionsPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	s.store.SetAssumptions(p)
	c.JSON(http.StatusOK, s.store.Assumptions())
}
