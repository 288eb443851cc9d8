package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ActorClaims представляет данные JWT токена пользователя админки.
type ActorClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
}

// GenerateActorJWT создает JWT токен пользователя.
//
// Параметры:
//   - userID: идентификатор пользователя
//   - role: роль пользователя
//   - expire: срок действия токена
//   - key: ключ для подписи токена
//
// Возвращает:
//   - string: сгенерированный JWT токен
//   - error: ошибка генерации токена
func GenerateActorJWT(userID uint, role string, expire time.Duration, key []byte) (string, error) {
	now := time.Now()
	claims := ActorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
		UserID: userID,
		Role:   role,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating actor jwt token: %w", err)
	}
	return token, nil
}

// ValidateActorJWT проверяет JWT токен пользователя и возвращает его данные.
//
// Параметры:
//   - tokenString: JWT токен в виде строки
//   - key: ключ для проверки подписи
//
// Возвращает:
//   - *ActorClaims: данные токена
//   - error: ошибка проверки (ErrTokenExpired если истек срок действия)
func ValidateActorJWT(tokenString string, key []byte) (*ActorClaims, error) {
	token, err := validateJWT(tokenString, new(ActorClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating actor jwt token: %w", err)
	}

	claims, ok := token.Claims.(*ActorClaims)
	if !ok || claims.UserID == 0 {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

// generateJWT создает JWT токен с указанными данными.
//
// Параметры:
//   - claims: данные для включения в токен
//   - key: ключ для подписи
//
// Возвращает:
//   - string: сгенерированный JWT токен
//   - error: ошибка генерации
func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %w", err)
	}

	return tokenString, nil
}

// validateJWT проверяет JWT токен.
//
// Параметры:
//   - tokenString: JWT токен в виде строки
//   - claims: структура для разбора данных токена
//   - key: ключ для проверки подписи
//
// Возвращает:
//   - *jwt.Token: проверенный токен
//   - error: ошибка проверки
func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}

	return token, nil
}
