package mockapi

import (
	"strings"
	"sync"
	"time"

	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
)

// state is the mock backend's in-memory database. Every handler reads and
// writes through the single mutex; the mock trades throughput for being
// trivially resettable between test runs.
type state struct {
	mu sync.Mutex

	products    []entity.Product
	categories  []entity.Category
	collections []entity.Collection

	wishlist            []entity.WishlistItem
	wishlistCollections []entity.WishlistCollection
	nextWishlistId      int

	cart       []entity.CartItem
	nextCartId int

	orders []entity.Order

	customOrders      []entity.CustomOrder
	drafts            map[string]entity.CustomOrder
	consultations     []entity.DesignConsultation
	nextCustomOrderId int

	preferences entity.NotificationSettings
}

func newState() *state {
	s := &state{
		nextWishlistId:    1,
		nextCartId:        1,
		nextCustomOrderId: 1,
		drafts:            make(map[string]entity.CustomOrder),
		preferences:       entity.DefaultNotificationSettings(),
	}
	s.seed()
	return s
}

func strPtr(v string) *string   { return &v }
func f64Ptr(v float64) *float64 { return &v }

func (s *state) seed() {
	s.products = []entity.Product{
		{Id: 1, Name: "Eternal Solitaire Ring", Description: strPtr("1.5ct round brilliant on a platinum band"), Price: 8400, ImageUrl: strPtr("/img/solitaire.jpg"), Category: strPtr("rings"), Featured: true},
		{Id: 2, Name: "Cuban Link Chain", Description: strPtr("14k gold, 8mm"), Price: 3200, ImageUrl: strPtr("/img/cuban.jpg"), Category: strPtr("chains"), Featured: true},
		{Id: 3, Name: "Diamond Tennis Bracelet", Price: 5600, ImageUrl: strPtr("/img/tennis.jpg"), Category: strPtr("bracelets")},
		{Id: 4, Name: "Pearl Drop Earrings", Price: 980, Category: strPtr("earrings")},
	}
	s.categories = []entity.Category{
		{Id: 1, Name: "Rings", Slug: "rings"},
		{Id: 2, Name: "Chains", Slug: "chains"},
		{Id: 3, Name: "Bracelets", Slug: "bracelets"},
		{Id: 4, Name: "Earrings", Slug: "earrings"},
	}
	s.collections = []entity.Collection{
		{Id: 1, Name: "Signature", Description: strPtr("House classics")},
		{Id: 2, Name: "Atelier", Description: strPtr("Limited bespoke pieces")},
	}
	s.orders = []entity.Order{
		{
			Id: 1001, TotalPrice: 3200, Status: "delivered",
			CreatedAt: time.Now().AddDate(0, -1, 0).Format(time.RFC3339),
			Items:     []entity.OrderItem{{ProductId: 2, ProductName: "Cuban Link Chain", UnitPrice: 3200, Quantity: 1}},
		},
	}
}

func (s *state) productById(id int) (entity.Product, bool) {
	for _, p := range s.products {
		if p.Id == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

func (s *state) filterProducts(category, search string, featured bool) []entity.Product {
	matched := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && (p.Category == nil || *p.Category != category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		if featured && !p.Featured {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
