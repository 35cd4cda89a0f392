// Package handlers HTTP请求处理器
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fbtracker/v1/internal/core/tracker/ledger"
	"github.com/fbtracker/v1/internal/core/tracker/state"
	log "github.com/fbtracker/v1/pkg/interfaces/infrastructure/log"
	rtif "github.com/fbtracker/v1/pkg/interfaces/runtime"
	"github.com/fbtracker/v1/pkg/types"
)

// TrackerHandler 追踪器读取接口
type TrackerHandler struct {
	host      rtif.Host
	deriver   rtif.AddressDeriver
	programID types.Address
	logger    log.Logger
}

// NewTrackerHandler 创建处理器
func NewTrackerHandler(host rtif.Host, deriver rtif.AddressDeriver, programID types.Address, logger log.Logger) *TrackerHandler {
	return &TrackerHandler{
		host:      host,
		deriver:   deriver,
		programID: programID,
		logger:    logger,
	}
}

// GetState GET /api/v1/tracker/state
//
// 返回解码后的追踪记录及当前赛季简述。
func (h *TrackerHandler) GetState(c *gin.Context) {
	addr, _, err := h.deriver.Derive(h.programID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	account, err := h.host.Account(c.Request.Context(), addr)
	if err != nil {
		if errors.Is(err, types.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "追踪器尚未初始化"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	record, err := state.Decode(account.Data)
	if err != nil {
		h.logger.Errorf("追踪记录解码失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"address":  addr.String(),
		"record":   record,
		"season":   record.SeasonString(),
		"complete": state.IsComplete(record),
	}
	if entry, ok := ledger.Lookup(record.CurrentSeasonKey); ok {
		resp["narrative"] = entry.Narrative
	}
	c.JSON(http.StatusOK, resp)
}

// GetSeasons GET /api/v1/tracker/seasons
func (h *TrackerHandler) GetSeasons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"seasons": ledger.All()})
}

// GetSeason GET /api/v1/tracker/seasons/:key
func (h *TrackerHandler) GetSeason(c *gin.Context) {
	key, err := strconv.ParseUint(c.Param("key"), 10, 16)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的赛季键"})
		return
	}
	entry, ok := ledger.Lookup(uint16(key))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "赛季不存在"})
		return
	}
	c.JSON(http.StatusOK, entry)
}
