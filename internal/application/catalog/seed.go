package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
)

// defaultProducts is the warehouse's standing catalog, inserted once when the
// products table is empty.
var defaultProducts = []struct {
	name     string
	group    string
	kgPerBao int64
}{
	{"Nhuyễn", "Đường cát", 50},
	{"Trung", "Đường cát", 50},
	{"Sóc Trăng To", "Đường cát", 50},
	{"Sóc Trăng Trung", "Đường cát", 50},
	{"Mía tím", "Đường cát", 50},
	{"Vàng", "Đường cát", 50},
	{"Phèn Xá", "Phèn", 10},
	{"Phèn BI Xanh Dương", "Phèn", 10},
	{"Phèn BI Xanh Lá", "Phèn", 10},
	{"Phèn Hạt Cam", "Phèn", 10},
	{"Phèn BI Túi", "Phèn", 20},
	{"Bi Đường", "Bi / phụ phẩm", 10},
	{"Bi Túi 500g", "Bi / phụ phẩm", 10},
	{"Bi Túi 1kg", "Bi / phụ phẩm", 10},
}

// SeedIfEmpty inserts the default catalog when the products table is empty.
// Returns the number of products inserted (0 when the catalog already has
// entries). Production deployments skip this from main.
func (uc *ProductUseCase) SeedIfEmpty() (int, error) {
	count, err := uc.repo.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	now := time.Now()
	products := make([]*entity.Product, 0, len(defaultProducts))
	for _, d := range defaultProducts {
		products = append(products, &entity.Product{
			ID:        uuid.New().String(),
			Name:      d.name,
			Group:     d.group,
			KgPerBao:  decimal.NewFromInt(d.kgPerBao),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if err := uc.repo.CreateBatch(products); err != nil {
		return 0, err
	}
	return len(products), nil
}
