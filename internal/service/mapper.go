package service

import (
	"smart-trolley-be/internal/dto"
	"smart-trolley-be/pkg/store"
)

func toListItemDTO(item store.ListItem) dto.ListItemDTO {
	return dto.ListItemDTO{
		Id:        item.Id,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Completed: item.Completed,
		Price:     item.Price,
		Location:  item.Location,
		Aisle:     item.Aisle,
	}
}

func toListItemDTOs(items []store.ListItem) []dto.ListItemDTO {
	out := make([]dto.ListItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toListItemDTO(item))
	}
	return out
}

func toTargetDTO(target *store.NavigationTarget) *dto.NavigationTargetDTO {
	if target == nil {
		return nil
	}
	path := make([]dto.PositionDTO, 0, len(target.Path))
	for _, p := range target.Path {
		path = append(path, dto.PositionDTO{X: p.X, Y: p.Y})
	}
	return &dto.NavigationTargetDTO{
		Item:        target.Item,
		SectionId:   target.SectionId,
		SectionName: target.SectionName,
		Aisle:       target.Aisle,
		Path:        path,
	}
}
