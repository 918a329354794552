package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis reconhecidos nos tokens emitidos pelo serviço de contas
const (
	RoleOwner = 1
	RoleStaff = 2
)

// Claims são as claims extraídas do token JWT do painel do restaurante.
// A emissão do token é responsabilidade do serviço de contas; aqui apenas
// validamos e lemos.
type Claims struct {
	UserID        int      `json:"user_id"`
	UserEmail     string   `json:"user_email"`
	UserRoleID    int      `json:"user_role_id"`
	RestaurantIDs []string `json:"restaurant_ids"`
	jwt.RegisteredClaims
}

// CanAccessRestaurant verifica se o token dá acesso ao restaurante informado
func (c *Claims) CanAccessRestaurant(restaurantID string) bool {
	for _, id := range c.RestaurantIDs {
		if id == restaurantID {
			return true
		}
	}
	return false
}
