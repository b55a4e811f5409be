// Package router 提供 HTTP 路由注册
// 本文件定义组织目录相关的路由（机构/院系/教室）
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterOrgRoutes 注册组织目录相关路由（需要认证）
// 创建和更新操作在 Service 层校验平台管理员身份
func (rt *Router) RegisterOrgRoutes(rg *gin.RouterGroup) {
	orgGroup := rg.Group("/org")
	{
		orgGroup.POST("/createInstitution", rt.handlers.Org.CreateInstitution) // 创建机构
		orgGroup.POST("/createDepartment", rt.handlers.Org.CreateDepartment)   // 创建院系
		orgGroup.POST("/createRoom", rt.handlers.Org.CreateRoom)               // 创建教室
		orgGroup.POST("/updateInstitution", rt.handlers.Org.UpdateInstitution) // 更新机构
		orgGroup.POST("/updateDepartment", rt.handlers.Org.UpdateDepartment)   // 更新院系
		orgGroup.POST("/updateRoom", rt.handlers.Org.UpdateRoom)               // 更新教室
		orgGroup.GET("/getInstitution", rt.handlers.Org.GetInstitution)        // 机构详情
		orgGroup.GET("/institutions", rt.handlers.Org.GetInstitutionList)      // 机构列表
		orgGroup.GET("/departments", rt.handlers.Org.GetDepartmentList)        // 院系列表
		orgGroup.GET("/rooms", rt.handlers.Org.GetRoomList)                    // 教室列表
	}
}
