package sharepoint

import (
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	"github.com/nimbusworks/intranet_portal_app/internal/utils/mapping"
)

// AssetRepository manages the asset register list.
type AssetRepository struct {
	*listRepository[domain.Asset]
}

var _ portsrepo.AssetRepository = (*AssetRepository)(nil)

// NewAssetRepository builds the repository; no I/O happens here.
func NewAssetRepository(store listStore, listName string) *AssetRepository {
	return &AssetRepository{
		listRepository: newListRepository(
			store,
			listName,
			mapping.AssetDict,
			mapping.DecodeAsset,
			[]string{"name"},
			map[string]any{"status": string(domain.AssetStatusAvailable)},
		),
	}
}
