package cache

import (
	"time"

	ctdomain "github.com/harborline/seaquote/internal/containertype/domain"
	portdomain "github.com/harborline/seaquote/internal/port/domain"
)

// Reference data changes only through administrative writes, so the
// free-text extractor reads it through this cache. Writes invalidate;
// the TTL bounds staleness for out-of-band changes.
const defaultReferenceTTL = 5 * time.Minute

const (
	portsKey          = "ports"
	containerTypesKey = "container_types"
)

// ReferenceCache stores the port and container-type lists consulted on
// every free-text quote.
type ReferenceCache interface {
	GetPorts() ([]portdomain.Port, bool)
	SetPorts(ports []portdomain.Port)
	InvalidatePorts()
	GetContainerTypes() ([]ctdomain.ContainerType, bool)
	SetContainerTypes(types []ctdomain.ContainerType)
	InvalidateContainerTypes()
}

type referenceCache struct {
	ports *TTLCache[string, []portdomain.Port]
	types *TTLCache[string, []ctdomain.ContainerType]
	ttl   time.Duration
}

func NewReferenceCache() ReferenceCache {
	return &referenceCache{
		ports: NewTTLCache[string, []portdomain.Port](),
		types: NewTTLCache[string, []ctdomain.ContainerType](),
		ttl:   defaultReferenceTTL,
	}
}

func (c *referenceCache) GetPorts() ([]portdomain.Port, bool) {
	return c.ports.Get(portsKey)
}

func (c *referenceCache) SetPorts(ports []portdomain.Port) {
	c.ports.Set(portsKey, ports, c.ttl)
}

func (c *referenceCache) InvalidatePorts() {
	c.ports.Delete(portsKey)
}

func (c *referenceCache) GetContainerTypes() ([]ctdomain.ContainerType, bool) {
	return c.types.Get(containerTypesKey)
}

func (c *referenceCache) SetContainerTypes(types []ctdomain.ContainerType) {
	c.types.Set(containerTypesKey, types, c.ttl)
}

func (c *referenceCache) InvalidateContainerTypes() {
	c.types.Delete(containerTypesKey)
}
