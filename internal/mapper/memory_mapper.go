package mapper

import (
	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/model"
)

type MemoryMapper struct{}

func NewMemoryMapper() *MemoryMapper {
	return &MemoryMapper{}
}

func (m *MemoryMapper) ToEntity(mem *model.Memory) *entity.Memory {
	if mem == nil {
		return nil
	}

	// Rows written before the category column existed come back empty
	category, ok := entity.ParseMemoryCategory(mem.Category)
	if !ok {
		category = entity.MemoryCategoryGeneral
	}

	return &entity.Memory{
		Id:        mem.Id,
		UserId:    mem.UserId,
		Content:   mem.Content,
		Category:  category,
		Tags:      mem.Tags,
		IsPinned:  mem.IsPinned,
		CreatedAt: mem.CreatedAt,
		UpdatedAt: mem.UpdatedAt,
	}
}

func (m *MemoryMapper) ToModel(mem *entity.Memory) *model.Memory {
	if mem == nil {
		return nil
	}
	return &model.Memory{
		Id:        mem.Id,
		UserId:    mem.UserId,
		Content:   mem.Content,
		Category:  string(mem.Category),
		Tags:      mem.Tags,
		IsPinned:  mem.IsPinned,
		CreatedAt: mem.CreatedAt,
		UpdatedAt: mem.UpdatedAt,
	}
}

func (m *MemoryMapper) ToEntities(memories []*model.Memory) []*entity.Memory {
	entities := make([]*entity.Memory, len(memories))
	for i, mem := range memories {
		entities[i] = m.ToEntity(mem)
	}
	return entities
}
