package pkg

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/go-redis/redis/v8"
	"golang.org/x/net/context"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	Rdb *redis.Client
	Ctx = context.Background()
)

// TTL longo: endereço geocodificado não muda com frequência e a cota da API
// de geocoding é o recurso caro.
const geocodeTTL = 30 * 24 * time.Hour

func InitRedis() {
	redisAddr := os.Getenv("REDIS_URL")
	if redisAddr == "" {
		panic("REDIS_URL not found")
	}

	Rdb = redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	_, err := Rdb.Ping(Ctx).Result()
	if err != nil {
		panic("Não foi possível conectar ao Redis: " + err.Error())
	}
}

type CachedGeocode struct {
	Lat               float64 `json:"lat"`
	Lng               float64 `json:"lng"`
	EnderecoFormatado string  `json:"endereco_formatado"`
}

// GetCachedGeocode busca um endereço no cache. Ausência não é erro do
// chamador: devolve ok=false e segue para o provedor.
func GetCachedGeocode(ctx context.Context, endereco string) (CachedGeocode, bool) {
	if Rdb == nil {
		return CachedGeocode{}, false
	}

	raw, err := Rdb.Get(ctx, geocodeKey(endereco)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return CachedGeocode{}, false
		}
		return CachedGeocode{}, false
	}

	var cached CachedGeocode
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return CachedGeocode{}, false
	}
	return cached, true
}

func SetCachedGeocode(ctx context.Context, endereco string, value CachedGeocode) {
	if Rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	Rdb.Set(ctx, geocodeKey(endereco), raw, geocodeTTL)
}

var acentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// geocodeKey normaliza o endereço antes de virar chave: minúsculas,
// espaços colapsados e acentos removidos, para "São Paulo" e "sao paulo"
// caírem na mesma entrada.
func geocodeKey(endereco string) string {
	folded, _, err := transform.String(acentos, endereco)
	if err != nil {
		folded = endereco
	}
	folded = strings.ToLower(strings.Join(strings.Fields(folded), " "))
	return "geocode:" + folded
}
