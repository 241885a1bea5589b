package mapper

import (
	"github.com/charley4805/project-pretzel/internal/entity"
	"github.com/charley4805/project-pretzel/internal/model"
)

type MemberMapper struct{}

func NewMemberMapper() *MemberMapper {
	return &MemberMapper{}
}

// ToEntity flattens the joined role row into the member entity. Callers must
// preload Role; an unloaded role leaves the key and name empty.
func (m *MemberMapper) ToEntity(pm *model.ProjectMember) *entity.ProjectMember {
	if pm == nil {
		return nil
	}

	return &entity.ProjectMember{
		Id:        pm.Id,
		ProjectId: pm.ProjectId,
		UserId:    pm.UserId,
		RoleId:    pm.RoleId,
		RoleKey:   pm.Role.Key,
		RoleName:  pm.Role.Name,
		CreatedAt: pm.CreatedAt,
	}
}

func (m *MemberMapper) ToModel(pm *entity.ProjectMember) *model.ProjectMember {
	if pm == nil {
		return nil
	}

	return &model.ProjectMember{
		Id:        pm.Id,
		ProjectId: pm.ProjectId,
		UserId:    pm.UserId,
		RoleId:    pm.RoleId,
		CreatedAt: pm.CreatedAt,
	}
}

func (m *MemberMapper) ToEntities(members []*model.ProjectMember) []*entity.ProjectMember {
	entities := make([]*entity.ProjectMember, len(members))
	for i, pm := range members {
		entities[i] = m.ToEntity(pm)
	}
	return entities
}
