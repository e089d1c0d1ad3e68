package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"airport-distance/config"
	"airport-distance/db"
	"airport-distance/handler"
	"airport-distance/repository"
	"airport-distance/service"
)

func main() {
	// 1. 读取配置 (环境变量，可选配置文件 CONFIG_FILE)
	v, err := config.New(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		log.Fatal(err)
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		log.Fatal(err)
	}

	// 2. 初始化数据库，第一次运行时导入机场数据
	gormDB, err := db.InitDB(cfg.DB)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 机场仓库 (带缓存) 和距离服务
	airports := repository.NewCachedAirports(db.NewAirportStore(gormDB), cfg.Cache.Airports, cfg.Cache.Shards)
	handler.Distance = service.NewDistanceService(airports)

	// 4. 认证
	if err := handler.SetupAuth(cfg.Auth); err != nil {
		log.Fatalf("初始化认证失败: %v", err)
	}

	// 5. 启动服务器
	r := handler.NewRouter()
	log.WithField("addr", cfg.Server.Addr).Info("服务器启动中...")
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
