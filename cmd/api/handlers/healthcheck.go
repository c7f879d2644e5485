package handlers

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/shirou/gopsutil/v3/mem"

	"vidtube.com/dal/db"
)

var startedAt = time.Now()

// Healthcheck reports process uptime, database reachability and host memory
// pressure.
func Healthcheck(ctx context.Context, c *app.RequestContext) {
	data := map[string]interface{}{
		"status": "OK",
		"uptime": time.Since(startedAt).Round(time.Second).String(),
	}

	dbStatus := "ok"
	if db.DB == nil {
		dbStatus = "not initialized"
	} else if sqlDB, err := db.DB.DB(); err != nil {
		dbStatus = err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = err.Error()
	}
	data["database"] = dbStatus

	if vm, err := mem.VirtualMemory(); err == nil {
		data["memoryUsedPercent"] = vm.UsedPercent
	}

	SendResponse(c, nil, data, "Service is healthy")
}
