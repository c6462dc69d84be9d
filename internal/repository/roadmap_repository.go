package repository

import (
	"levelup-go/internal/models"

	"gorm.io/gorm"
)

// RoadmapRepository 学习路径数据访问层，负责主/分支节点的
// 顺序维护和级联删除
type RoadmapRepository struct {
	db *gorm.DB
}

// NewRoadmapRepository 创建学习路径Repository
func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{db: db}
}

// ListMainsOrInit 获取范围内的主节点（按node_order升序）。
// 范围为空时自动插入一个默认主节点再返回，查询和初始化在一个事务内。
func (r *RoadmapRepository) ListMainsOrInit(userID, targetID string) ([]models.MainNode, error) {
	var mains []models.MainNode

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND target_id = ?", userID, targetID).
			Order("node_order ASC").
			Find(&mains).Error; err != nil {
			return err
		}
		if len(mains) > 0 {
			return nil
		}

		node := models.MainNode{
			UserID:    userID,
			TargetID:  targetID,
			Title:     DefaultMainNodeTitle,
			Status:    "todo",
			NodeOrder: 1,
		}
		if err := tx.Create(&node).Error; err != nil {
			return err
		}

		mains = []models.MainNode{node}
		return nil
	})

	return mains, err
}

// InsertMainAt 在指定节点之后插入新主节点。
//
// insertAfterID为空（含前端传来的"null"）时追加到末尾：max(node_order)+1。
// 否则取该节点的node_order+1，节点不存在时退化为0。
// 插入前把范围内所有 node_order >= 插入位置 的节点后移一位，
// 重排和插入在同一个事务里完成。
func (r *RoadmapRepository) InsertMainAt(userID, targetID, title, insertAfterID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var insertOrder int

		if insertAfterID == "" || insertAfterID == "null" {
			var maxOrder *int
			if err := tx.Model(&models.MainNode{}).
				Where("user_id = ? AND target_id = ?", userID, targetID).
				Select("MAX(node_order)").
				Scan(&maxOrder).Error; err != nil {
				return err
			}
			if maxOrder != nil {
				insertOrder = *maxOrder + 1
			} else {
				insertOrder = 1
			}
		} else {
			var after models.MainNode
			err := tx.Where("id = ?", insertAfterID).First(&after).Error
			switch {
			case err == nil:
				insertOrder = after.NodeOrder + 1
			case err == gorm.ErrRecordNotFound:
				insertOrder = 0
			default:
				return err
			}
		}

		if err := tx.Model(&models.MainNode{}).
			Where("user_id = ? AND target_id = ? AND node_order >= ?", userID, targetID, insertOrder).
			Update("node_order", gorm.Expr("node_order + 1")).Error; err != nil {
			return err
		}

		node := models.MainNode{
			UserID:    userID,
			TargetID:  targetID,
			Title:     title,
			Status:    "todo",
			NodeOrder: insertOrder,
		}
		return tx.Create(&node).Error
	})
}

// CreateBranch 新增分支节点（分支节点无排序）
func (r *RoadmapRepository) CreateBranch(node *models.BranchNode) error {
	return r.db.Create(node).Error
}

// ListBranchesByMain 获取主节点下的分支节点
func (r *RoadmapRepository) ListBranchesByMain(mainID, targetID string) ([]models.BranchNode, error) {
	var branches []models.BranchNode
	err := r.db.Where("main_id = ? AND target_id = ?", mainID, targetID).
		Find(&branches).Error
	return branches, err
}

// UpdateMain 更新主节点信息
func (r *RoadmapRepository) UpdateMain(id uint, userID, targetID, title, status, remark string) error {
	return r.db.Model(&models.MainNode{}).
		Where("id = ? AND user_id = ? AND target_id = ?", id, userID, targetID).
		Updates(map[string]interface{}{
			"title":  title,
			"status": status,
			"remark": remark,
		}).Error
}

// UpdateBranch 更新分支节点信息
func (r *RoadmapRepository) UpdateBranch(id uint, userID, targetID, title, status, remark string) error {
	return r.db.Model(&models.BranchNode{}).
		Where("id = ? AND user_id = ? AND target_id = ?", id, userID, targetID).
		Updates(map[string]interface{}{
			"title":  title,
			"status": status,
			"remark": remark,
		}).Error
}

// DeleteMainCascade 删除主节点：先删其全部分支节点，再删主节点，
// 最后删除该用户关联到主节点或任一分支节点的笔记。整体一个事务。
func (r *RoadmapRepository) DeleteMainCascade(id uint, userID, targetID string) error {
	mainID := uintToString(id)

	return r.db.Transaction(func(tx *gorm.DB) error {
		var branchIDs []uint
		if err := tx.Model(&models.BranchNode{}).
			Where("main_id = ? AND user_id = ? AND target_id = ?", mainID, userID, targetID).
			Pluck("id", &branchIDs).Error; err != nil {
			return err
		}

		if err := tx.Where("main_id = ? AND user_id = ? AND target_id = ?", mainID, userID, targetID).
			Delete(&models.BranchNode{}).Error; err != nil {
			return err
		}

		if err := tx.Where("id = ? AND user_id = ? AND target_id = ?", id, userID, targetID).
			Delete(&models.MainNode{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ? AND node_kind = ? AND node_id = ?", userID, "main", mainID).
			Delete(&models.Note{}).Error; err != nil {
			return err
		}

		if len(branchIDs) == 0 {
			return nil
		}
		branchRefs := make([]string, 0, len(branchIDs))
		for _, bid := range branchIDs {
			branchRefs = append(branchRefs, uintToString(bid))
		}
		return tx.Where("user_id = ? AND node_kind = ? AND node_id IN ?", userID, "branch", branchRefs).
			Delete(&models.Note{}).Error
	})
}

// DeleteBranchCascade 删除分支节点及该用户关联到它的笔记
func (r *RoadmapRepository) DeleteBranchCascade(id uint, userID, targetID string) error {
	branchID := uintToString(id)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ? AND target_id = ?", id, userID, targetID).
			Delete(&models.BranchNode{}).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ? AND node_kind = ? AND node_id = ?", userID, "branch", branchID).
			Delete(&models.Note{}).Error
	})
}

// CountBranches 统计范围内分支节点总数和已完成数
func (r *RoadmapRepository) CountBranches(userID, targetID string) (total int64, done int64, err error) {
	scope := r.db.Model(&models.BranchNode{}).
		Where("user_id = ? AND target_id = ?", userID, targetID)

	if err = scope.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = scope.Session(&gorm.Session{}).Where("status = ?", "done").Count(&done).Error
	return total, done, err
}

// SearchMains 按标题模糊搜索用户的主节点
func (r *RoadmapRepository) SearchMains(userID, keyword string) ([]models.MainNode, error) {
	var mains []models.MainNode
	err := r.db.Where("user_id = ? AND title LIKE ?", userID, "%"+keyword+"%").
		Find(&mains).Error
	return mains, err
}

// SearchBranches 按标题模糊搜索用户的分支节点
func (r *RoadmapRepository) SearchBranches(userID, keyword string) ([]models.BranchNode, error) {
	var branches []models.BranchNode
	err := r.db.Where("user_id = ? AND title LIKE ?", userID, "%"+keyword+"%").
		Find(&branches).Error
	return branches, err
}

// ListMainsByTarget 获取目标下的所有主节点
func (r *RoadmapRepository) ListMainsByTarget(targetID string) ([]models.MainNode, error) {
	var mains []models.MainNode
	err := r.db.Where("target_id = ?", targetID).Find(&mains).Error
	return mains, err
}

// ListBranchesByMainID 获取主节点下的所有分支节点
func (r *RoadmapRepository) ListBranchesByMainID(mainID string) ([]models.BranchNode, error) {
	var branches []models.BranchNode
	err := r.db.Where("main_id = ?", mainID).Find(&branches).Error
	return branches, err
}
