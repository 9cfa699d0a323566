package application

import (
	"net/url"
	"strconv"
	"time"

	"github.com/pterosdk/go-pterodactyl/internal/rest"
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

// Location is a physical or logical grouping of nodes.
type Location struct {
	ID        int64     `json:"id"`
	Short     string    `json:"short"`
	Long      string    `json:"long"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationParams are the writable fields of a location.
type LocationParams struct {
	Short string `json:"short"`
	Long  string `json:"long,omitempty"`
}

// Nest is a category of eggs (service templates).
type Nest struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	Author      string    `json:"author"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// Egg is a service template describing how a server is installed and run.
type Egg struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	Nest        int64     `json:"nest"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	DockerImage string    `json:"docker_image"`
	Startup     string    `json:"startup"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// Node is a daemon host that runs servers.
type Node struct {
	ID                 int64     `json:"id"`
	UUID               string    `json:"uuid"`
	Public             bool      `json:"public"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	LocationID         int64     `json:"location_id"`
	FQDN               string    `json:"fqdn"`
	Scheme             string    `json:"scheme"`
	BehindProxy        bool      `json:"behind_proxy"`
	MaintenanceMode    bool      `json:"maintenance_mode"`
	Memory             int64     `json:"memory"`
	MemoryOverallocate int64     `json:"memory_overallocate"`
	Disk               int64     `json:"disk"`
	DiskOverallocate   int64     `json:"disk_overallocate"`
	UploadSize         int64     `json:"upload_size"`
	DaemonListen       int       `json:"daemon_listen"`
	DaemonSFTP         int       `json:"daemon_sftp"`
	DaemonBase         string    `json:"daemon_base"`
	UpdatedAt          time.Time `json:"updated_at"`
	CreatedAt          time.Time `json:"created_at"`
}

// NodeParams are the writable fields of a node.
type NodeParams struct {
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	LocationID         int64  `json:"location_id"`
	FQDN               string `json:"fqdn"`
	Scheme             string `json:"scheme"`
	Memory             int64  `json:"memory"`
	MemoryOverallocate int64  `json:"memory_overallocate"`
	Disk               int64  `json:"disk"`
	DiskOverallocate   int64  `json:"disk_overallocate"`
	UploadSize         int64  `json:"upload_size,omitempty"`
	DaemonListen       int    `json:"daemon_listen,omitempty"`
	DaemonSFTP         int    `json:"daemon_sftp,omitempty"`
	DaemonBase         string `json:"daemon_base,omitempty"`
}

// Allocation is an IP/port pair on a node that a server can bind.
type Allocation struct {
	ID       int64  `json:"id"`
	IP       string `json:"ip"`
	Alias    string `json:"alias"`
	Port     int    `json:"port"`
	Notes    string `json:"notes"`
	Assigned bool   `json:"assigned"`
}

// AllocationParams creates one or more allocations on a node.
type AllocationParams struct {
	IP    string   `json:"ip"`
	Ports []string `json:"ports"`
	Alias string   `json:"alias,omitempty"`
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

// Container describes the Docker container a server runs in.
type Container struct {
	StartupCommand string            `json:"startup_command"`
	Image          string            `json:"image"`
	Installed      bool              `json:"installed"`
	Environment    map[string]string `json:"environment"`
}

// Server is a game server as seen by the Application API.
type Server struct {
	ID            int64         `json:"id"`
	ExternalID    string        `json:"external_id"`
	UUID          string        `json:"uuid"`
	Identifier    string        `json:"identifier"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Suspended     bool          `json:"suspended"`
	Limits        Limits        `json:"limits"`
	FeatureLimits FeatureLimits `json:"feature_limits"`
	UserID        int64         `json:"user"`
	NodeID        int64         `json:"node"`
	AllocationID  int64         `json:"allocation"`
	NestID        int64         `json:"nest"`
	EggID         int64         `json:"egg"`
	Container     Container     `json:"container"`
	UpdatedAt     time.Time     `json:"updated_at"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ServerAllocation selects the default allocation for a new server.
type ServerAllocation struct {
	Default int64 `json:"default"`
}

// CreateServerParams are the fields required to provision a new server.
type CreateServerParams struct {
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	ExternalID        string            `json:"external_id,omitempty"`
	UserID            int64             `json:"user"`
	EggID             int64             `json:"egg"`
	DockerImage       string            `json:"docker_image"`
	Startup           string            `json:"startup"`
	Environment       map[string]string `json:"environment"`
	Limits            Limits            `json:"limits"`
	FeatureLimits     FeatureLimits     `json:"feature_limits"`
	Allocation        ServerAllocation  `json:"allocation"`
	StartOnCompletion bool              `json:"start_on_completion,omitempty"`
}

// User is a panel account.
type User struct {
	ID         int64     `json:"id"`
	ExternalID string    `json:"external_id"`
	UUID       string    `json:"uuid"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Language   string    `json:"language"`
	RootAdmin  bool      `json:"root_admin"`
	TwoFactor  bool      `json:"2fa"`
	UpdatedAt  time.Time `json:"updated_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserParams are the writable fields of a panel account.
type UserParams struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ExternalID string `json:"external_id,omitempty"`
	Language   string `json:"language,omitempty"`
	RootAdmin  bool   `json:"root_admin,omitempty"`
	Password   string `json:"password,omitempty"`
}
