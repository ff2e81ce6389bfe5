/*
Copyright © 2023 the GlobeMap authors.
This file is part of GlobeMap.

GlobeMap is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GlobeMap is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GlobeMap.  If not, see <http://www.gnu.org/licenses/>.
*/

package globemap

import (
	"context"
	"fmt"
	"runtime"

	"github.com/ctessum/requestcache"
	"github.com/spatialmodel/globemap/internal/hash"
)

// PointSource generates a point set. SphereConfig and StarConfig are
// point sources.
type PointSource interface {
	Points() *PointSet
}

// PointCache generates point sets on request and keeps the most recently
// used ones in memory. It is concurrency-safe, and concurrent requests
// for the same source are only computed once. Users desiring to make
// changes to returned point sets should make a copy first to avoid
// editing the cached results.
type PointCache struct {
	cache *requestcache.Cache
}

// NewPointCache returns a cache holding up to size point sets.
func NewPointCache(size int) *PointCache {
	if size < 1 {
		size = 1
	}
	return &PointCache{
		cache: requestcache.NewCache(func(ctx context.Context, request interface{}) (interface{}, error) {
			return request.(PointSource).Points(), nil
		}, runtime.GOMAXPROCS(-1),
			requestcache.Deduplicate(), requestcache.Memory(size)),
	}
}

// Points returns the point set for src.
func (c *PointCache) Points(ctx context.Context, src PointSource) (*PointSet, error) {
	key := hash.Key(fmt.Sprintf("%T", src), src)
	result, err := c.cache.NewRequest(ctx, src, key).Result()
	if err != nil {
		return nil, fmt.Errorf("globemap: generating points: %v", err)
	}
	return result.(*PointSet), nil
}
