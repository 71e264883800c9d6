// Package stubcatalog is an in-memory stand-in for the remote catalog/auth
// API, used by the local stub server so the client can run without the real
// backend. It is a development fixture, not the authoritative service.
package stubcatalog

import (
	"slices"
	"strings"
	"sync"

	"tilemart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrNotFound     = errors.New("tile not found")
	ErrWrongShop    = errors.New("tile does not belong to this shop")
	ErrEmailTaken   = errors.New("email already registered")
	ErrBadPassword  = errors.New("email or password incorrect")
	ErrUnknownEmail = errors.New("email or password incorrect")
)

// Account is a stub login account.
type Account struct {
	UserID   int64
	Email    string
	Password string
	Name     string
	Role     entity.Role
	ShopID   int64
}

// Store is a mutex-guarded in-memory tile table plus stub accounts.
type Store struct {
	mu       sync.Mutex
	tiles    []entity.Tile
	shops    []entity.Shop
	accounts map[string]*Account
	nextTile int64
	nextShop int64
	nextUser int64
}

// NewStore returns a store seeded with sample shops, tiles, and accounts.
func NewStore() *Store {
	s := &Store{
		accounts: make(map[string]*Account),
		nextTile: 1,
		nextShop: 1,
		nextUser: 1,
	}
	s.seed()

	return s
}

func (s *Store) seed() {
	floor := &entity.Category{ID: 1, Name: "Floor Tiles"}
	wall := &entity.Category{ID: 2, Name: "Wall Tiles"}
	bath := &entity.Category{ID: 3, Name: "Bathroom Tiles"}
	kitchen := &entity.Category{ID: 4, Name: "Kitchen Tiles"}

	sai := s.addShop("Sai Tiles Center", "Chennai", "9876543210")
	varsha := s.addShop("Varsha Ceramics", "Coimbatore", "9123456780")

	seedTiles := []entity.Tile{
		{Name: "Glossy White Floor", Price: 450, ImagePath: "/uploads/tiles/white_floor.jpg", Size: "600x600 mm", Stock: 120, Shop: sai, Category: floor},
		{Name: "Matte Black Wall", Price: 520, ImagePath: "/uploads/tiles/black_wall.jpg", Size: "300x600 mm", Stock: 80, Shop: sai, Category: wall},
		{Name: "Blue Bathroom Tile", Price: 300, ImagePath: "/uploads/tiles/blue_bath.jpg", Size: "300x300 mm", Stock: 200, Shop: varsha, Category: bath},
		{Name: "Marble Kitchen Tile", Price: 600, ImagePath: "/uploads/tiles/marble_kitchen.jpg", Size: "600x1200 mm", Stock: 45, Shop: varsha, Category: kitchen},
	}
	for _, tile := range seedTiles {
		tile.ID = s.nextTile
		s.nextTile++
		s.tiles = append(s.tiles, tile)
	}

	s.addAccount(&Account{Email: "customer@tilemart.dev", Password: "customer123", Name: "Demo Customer", Role: entity.RoleCustomer})
	s.addAccount(&Account{Email: "seller@tilemart.dev", Password: "seller123", Name: "Sai Tiles Center", Role: entity.RoleSeller, ShopID: 1})
}

func (s *Store) addShop(name, location, contactNumber string) *entity.Shop {
	shop := entity.Shop{
		ID:            s.nextShop,
		Name:          name,
		Location:      location,
		ContactNumber: contactNumber,
	}
	s.nextShop++
	s.shops = append(s.shops, shop)

	return &shop
}

func (s *Store) addAccount(account *Account) {
	account.UserID = s.nextUser
	s.nextUser++
	s.accounts[strings.ToLower(account.Email)] = account
}

// List returns all tiles in insertion order.
func (s *Store) List() []entity.Tile {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.tiles)
}

// Get returns a tile by id, or ErrNotFound.
func (s *Store) Get(id int64) (*entity.Tile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tiles {
		if s.tiles[i].ID == id {
			tile := s.tiles[i]

			return &tile, nil
		}
	}

	return nil, ErrNotFound
}

// Create inserts a tile owned by shopID and returns the stored record.
func (s *Store) Create(tile entity.Tile, shopID int64) *entity.Tile {
	s.mu.Lock()
	defer s.mu.Unlock()

	tile.ID = s.nextTile
	s.nextTile++
	if tile.Shop == nil {
		tile.Shop = &entity.Shop{ID: shopID}
	}
	s.tiles = append(s.tiles, tile)
	stored := tile

	return &stored
}

// Update overwrites the editable fields of a tile owned by shopID.
func (s *Store) Update(id, shopID int64, apply func(*entity.Tile)) (*entity.Tile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tiles {
		if s.tiles[i].ID != id {
			continue
		}
		if s.tiles[i].ShopID() != shopID {
			return nil, ErrWrongShop
		}
		apply(&s.tiles[i])
		tile := s.tiles[i]

		return &tile, nil
	}

	return nil, ErrNotFound
}

// Delete removes a tile owned by shopID.
func (s *Store) Delete(id, shopID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tiles {
		if s.tiles[i].ID != id {
			continue
		}
		if s.tiles[i].ShopID() != shopID {
			return ErrWrongShop
		}
		s.tiles = slices.Delete(s.tiles, i, i+1)

		return nil
	}

	return ErrNotFound
}

// Login checks credentials and returns the account with a fresh token.
func (s *Store) Login(email, password string) (*Account, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[strings.ToLower(email)]
	if !ok {
		return nil, "", ErrUnknownEmail
	}
	if account.Password != password {
		return nil, "", ErrBadPassword
	}

	return account, uuid.NewString(), nil
}

// Signup registers a new account; seller signups get a fresh shop.
func (s *Store) Signup(name, email, password string, role entity.Role, shopName, shopLocation, contactNumber string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := s.accounts[key]; exists {
		return nil, ErrEmailTaken
	}

	account := &Account{
		UserID:   s.nextUser,
		Email:    email,
		Password: password,
		Name:     name,
		Role:     role,
	}
	s.nextUser++

	if role == entity.RoleSeller {
		shop := s.addShop(shopName, shopLocation, contactNumber)
		account.ShopID = shop.ID
	}

	s.accounts[key] = account

	return account, nil
}
