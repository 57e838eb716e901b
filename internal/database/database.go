package database

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"
)

// --- Conexões globais ---
var (
	Scylla  *gocql.Session
	Redis   *redis.Client
	Elastic *elasticsearch.Client
)

// ConnectDatabases abre todas as conexões na subida do servidor.
// ScyllaDB e Redis são obrigatórios; Elasticsearch é opcional — sem ele
// a busca de produtos fica indisponível, o resto do app funciona normal.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectScylla()
	connectRedis(ctx)
	connectElastic()

	log.Println("✅ Bancos de dados conectados")
}

// =============================================
// SCYLLA DB
// =============================================

func connectScylla() {
	hosts := strings.Split(os.Getenv("SCYLLA_HOSTS"), ",")
	keyspace := os.Getenv("SCYLLA_KEYSPACE")
	if keyspace == "" {
		keyspace = "castanhas"
	}

	cluster := gocql.NewCluster(hosts...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.NumConns = 4
	cluster.ReconnectInterval = 1 * time.Second

	if username := os.Getenv("SCYLLA_USERNAME"); username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: username,
			Password: os.Getenv("SCYLLA_PASSWORD"),
		}
	}

	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	session, err := cluster.CreateSession()
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no ScyllaDB: %v", err)
	}

	// Nota: as tabelas devem ser criadas via scripts/scylladb_init.cql
	Scylla = session
	log.Printf("✅ Conectado ao ScyllaDB (keyspace '%s')", keyspace)
}

// =============================================
// REDIS
// =============================================

func connectRedis(ctx context.Context) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erro de conexão com o Redis:", err)
	}
	log.Println("✅ Conectado ao Redis")
}

// =============================================
// ELASTICSEARCH (opcional)
// =============================================

func connectElastic() {
	elasticURL := os.Getenv("ELASTIC_URL")
	if elasticURL == "" {
		log.Println("⚠️ ELASTIC_URL não configurado — busca de produtos desativada")
		return
	}

	cfg := elasticsearch.Config{
		Addresses: []string{elasticURL},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Println("⚠️ Erro criando cliente Elasticsearch:", err)
		return
	}

	res, err := client.Info()
	if err != nil {
		log.Println("⚠️ Elasticsearch inacessível — busca de produtos desativada:", err)
		return
	}
	defer res.Body.Close()

	Elastic = client
	log.Println("✅ Conectado ao Elasticsearch")
}

// CloseDatabases fecha as conexões abertas.
func CloseDatabases() {
	if Scylla != nil {
		Scylla.Close()
		log.Println("🔌 Sessão ScyllaDB fechada")
	}
	if Redis != nil {
		_ = Redis.Close()
		log.Println("🔌 Conexão Redis fechada")
	}
}
