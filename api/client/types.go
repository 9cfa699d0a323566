package client

import (
	"net/url"
	"strconv"

	"github.com/pterosdk/go-pterodactyl/internal/rest"
)

// PowerSignal is a power action accepted by a server's power endpoint.
type PowerSignal string

// Power signals.
const (
	PowerStart   PowerSignal = "start"
	PowerStop    PowerSignal = "stop"
	PowerRestart PowerSignal = "restart"
	PowerKill    PowerSignal = "kill"
)

// ListOptions controls pagination for list operations. A nil value requests
// the panel's first page with its default page size.
type ListOptions struct {
	Page    int
	PerPage int
}

func (o *ListOptions) values() url.Values {
	if o == nil {
		return nil
	}

	v := url.Values{}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(o.PerPage))
	}
	return v
}

// Pagination describes the position of a list response within the full
// collection.
type Pagination struct {
	Total       int
	Count       int
	PerPage     int
	CurrentPage int
	TotalPages  int
}

func paginationFrom(meta rest.Meta) *Pagination {
	return &Pagination{
		Total:       meta.Pagination.Total,
		Count:       meta.Pagination.Count,
		PerPage:     meta.Pagination.PerPage,
		CurrentPage: meta.Pagination.CurrentPage,
		TotalPages:  meta.Pagination.TotalPages,
	}
}

// Account is the authenticated panel account.
type Account struct {
	ID        int64  `json:"id"`
	Admin     bool   `json:"admin"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Language  string `json:"language"`
}

// SFTPDetails describe a server's SFTP endpoint.
type SFTPDetails struct {
	IP   string `json:"ip"`
	Port int    `json:"port"`
}

// Limits are the resource limits applied to a server's container.
type Limits struct {
	Memory int64 `json:"memory"`
	Swap   int64 `json:"swap"`
	Disk   int64 `json:"disk"`
	IO     int64 `json:"io"`
	CPU    int64 `json:"cpu"`
}

// FeatureLimits bound the panel features available to a server.
type FeatureLimits struct {
	Databases   int64 `json:"databases"`
	Allocations int64 `json:"allocations"`
	Backups     int64 `json:"backups"`
}

// Server is a game server as seen by the Client API.
type Server struct {
	ServerOwner   bool          `json:"server_owner"`
	Identifier    string        `json:"identifier"`
	UUID          string        `json:"uuid"`
	Name          string        `json:"name"`
	Node          string        `json:"node"`
	Description   string        `json:"description"`
	SFTPDetails   SFTPDetails   `json:"sftp_details"`
	Limits        Limits        `json:"limits"`
	FeatureLimits FeatureLimits `json:"feature_limits"`
	IsSuspended   bool          `json:"is_suspended"`
	IsInstalling  bool          `json:"is_installing"`
}

// ResourceUsage is a point-in-time snapshot of a running server's resource
// consumption.
type ResourceUsage struct {
	MemoryBytes    int64   `json:"memory_bytes"`
	CPUAbsolute    float64 `json:"cpu_absolute"`
	DiskBytes      int64   `json:"disk_bytes"`
	NetworkRxBytes int64   `json:"network_rx_bytes"`
	NetworkTxBytes int64   `json:"network_tx_bytes"`
	Uptime         int64   `json:"uptime"`
}

// Resources reports a server's current state and utilization.
type Resources struct {
	CurrentState string        `json:"current_state"`
	IsSuspended  bool          `json:"is_suspended"`
	Resources    ResourceUsage `json:"resources"`
}
