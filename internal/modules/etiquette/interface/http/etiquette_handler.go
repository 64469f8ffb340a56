package handler

import (
	etiquetteRequest "LiveDesk/internal/modules/etiquette/application/dto/request"
	etiquetteService "LiveDesk/internal/modules/etiquette/application/service"
	"LiveDesk/pkg/back"
	"LiveDesk/pkg/xerr"
	"LiveDesk/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type EtiquetteHandler struct {
	svc etiquetteService.EtiquetteService
}

func NewEtiquetteHandler(svc etiquetteService.EtiquetteService) *EtiquetteHandler {
	return &EtiquetteHandler{svc: svc}
}

func (h *EtiquetteHandler) List(c *gin.Context) {
	data, err := h.svc.ListForTeam(c.GetString("team_id"))
	back.Result(c, data, err)
}

func (h *EtiquetteHandler) Create(c *gin.Context) {
	var req etiquetteRequest.CreateEtiquetteRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.Create(c.GetString("team_id"), req)
	back.Result(c, data, err)
}

func (h *EtiquetteHandler) Update(c *gin.Context) {
	var req etiquetteRequest.UpdateEtiquetteRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.Update(c.GetString("team_id"), c.Param("id"), req)
	back.Result(c, data, err)
}

func (h *EtiquetteHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.GetString("team_id"), c.Param("id"))
	back.Result(c, gin.H{"success": err == nil}, err)
}
