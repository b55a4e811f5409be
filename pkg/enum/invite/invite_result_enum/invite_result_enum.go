// Package invite_result_enum 定义批量邀请的单个目标处理结果
// 邀请是唯一按目标独立上报结果的操作：部分成功是正常返回而非失败
package invite_result_enum

const (
	INVITED            = "INVITED"            // 已创建邀请记录
	BANNED             = "BANNED"             // 目标已被封禁，跳过
	ALREADY_ASSOCIATED = "ALREADY_ASSOCIATED" // 目标已有成员关系（已加入/待审核/已邀请），跳过
)
