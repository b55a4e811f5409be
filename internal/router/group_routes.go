// Package router 提供 HTTP 路由注册
// 本文件定义群组生命周期相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterGroupRoutes 注册群组相关路由（需要认证）
func (rt *Router) RegisterGroupRoutes(rg *gin.RouterGroup) {
	groupGroup := rg.Group("/group")
	{
		groupGroup.POST("/createGroup", rt.handlers.Group.CreateGroup)   // 创建群组
		groupGroup.POST("/updateGroup", rt.handlers.Group.UpdateGroup)   // 更新群组信息（管理员以上）
		groupGroup.POST("/deleteGroup", rt.handlers.Group.DeleteGroup)   // 删除群组（仅群主）
		groupGroup.GET("/getGroupInfo", rt.handlers.Group.GetGroupInfo)  // 获取群组详情
		groupGroup.GET("/getGroupList", rt.handlers.Group.GetGroupList)  // 获取机构下的群组列表
		groupGroup.GET("/getMyGroups", rt.handlers.Group.GetMyGroups)    // 获取已加入的群组
	}
}
