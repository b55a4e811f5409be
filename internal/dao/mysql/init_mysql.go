// Package mysql 提供数据访问层的初始化和全局数据库实例管理
// 负责建立 MySQL 连接、自动迁移表结构、初始化 Repository 层
package mysql

import (
	"fmt"

	"campus_hub_server/internal/config"
	"campus_hub_server/internal/dao/mysql/repository"
	"campus_hub_server/internal/model"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init 初始化数据库连接并返回 Repository 层实例
// 执行步骤：
//  1. 从配置读取 MySQL 连接信息
//  2. 构建 DSN（Data Source Name）连接字符串
//  3. 使用 GORM 建立数据库连接
//  4. 执行 AutoMigrate 自动迁移表结构
//  5. 创建并返回 Repository 实例
//
// 返回: Repository 实例集合
func Init() *repository.Repositories {
	// 获取配置
	conf := config.GetConfig()

	// 构建 MySQL DSN 连接字符串
	// 格式：user:password@tcp(host:port)/database?params
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	// TranslateError 开启后 MySQL 1062 会被翻译为 gorm.ErrDuplicatedKey
	// slug 去重和 (group, user) 唯一索引的冲突识别依赖这一点
	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		// 连接失败，记录致命错误并退出程序
		zap.L().Fatal(err.Error())
	}

	// AutoMigrate 自动迁移表结构
	// 如果表不存在则创建，如果字段变更则更新结构
	// 注意：不会删除已有字段或数据
	err = db.AutoMigrate(
		&model.UserInfo{},     // 用户信息表
		&model.GroupInfo{},    // 群组信息表
		&model.GroupMember{},  // 群组成员表
		&model.Post{},         // 帖子表
		&model.Comment{},      // 评论表
		&model.Reaction{},     // 帖子点赞表
		&model.ReadPost{},     // 帖子已读表
		&model.SavedPost{},    // 帖子收藏表
		&model.Follow{},       // 关注关系表
		&model.Friendship{},   // 好友关系表
		&model.Institution{},  // 机构表
		&model.Department{},   // 院系表
		&model.Room{},         // 教室表
		&model.Notification{}, // 通知表
	)
	if err != nil {
		// 迁移失败，记录致命错误并退出程序
		zap.L().Fatal(err.Error())
	}

	// 创建并返回 Repository 实例集合
	return repository.NewRepositories(db)
}
