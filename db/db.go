package db

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"airport-distance/config"
	"airport-distance/model"
)

// importBatchSize 导入时每批插入的记录数
const importBatchSize = 100

// InitDB 连接 PostgreSQL，自动迁移表结构
// 如果机场表为空，会从 cfg.SeedFile 导入初始数据
func InitDB(cfg config.DBConfig) (*gorm.DB, error) {
	// 带重试的数据库连接 (容器启动时数据库可能还没准备好)
	var (
		db  *gorm.DB
		err error
	)
	maxRetries := max(cfg.MaxRetries, 1)
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			break
		}
		log.Warnf("等待数据库就绪... (%d/%d): %v", i+1, maxRetries, err)
		time.Sleep(cfg.RetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	if err := db.AutoMigrate(&model.Airport{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	// 检查是否需要导入初始数据
	var count int64
	if err := db.Model(&model.Airport{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("统计机场数量失败: %w", err)
	}
	if count == 0 && cfg.SeedFile != "" {
		log.Infof("检测到机场表为空，正在导入 %s...", cfg.SeedFile)
		if err := importAirports(db, cfg.SeedFile); err != nil {
			log.Warnf("导入机场数据失败: %v", err)
		} else {
			log.Info("机场数据导入成功!")
		}
	}

	log.Info("数据库连接并初始化成功")
	return db, nil
}

// importAirports 从 Global Airport Database 文本文件导入机场数据
func importAirports(db *gorm.DB, filepath string) error {
	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("读取文件失败: %w", err)
	}
	defer file.Close()

	airports, skipped, err := ParseAirportDatabase(file)
	if err != nil {
		return fmt.Errorf("解析文件失败: %w", err)
	}
	for _, e := range skipped {
		log.Warn(e)
	}

	if len(airports) == 0 {
		return nil
	}
	if err := db.CreateInBatches(airports, importBatchSize).Error; err != nil {
		return fmt.Errorf("插入机场失败: %w", err)
	}
	log.Infof("导入了 %d 个机场 (跳过 %d 行)", len(airports), len(skipped))

	return nil
}
