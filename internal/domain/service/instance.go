package service

import (
	"github.com/diegoclair/discord-timezone-bot/internal/domain/contract"
	"github.com/diegoclair/discord-timezone-bot/internal/timezone"
)

type Instance struct {
	TimeZone     *timeZoneService
	Registry     *registryService
	Synchronizer *synchronizer
}

func NewInstance(dm contract.DataManager, roleClient contract.RoleClient, index *timezone.ClassIndex) *Instance {
	registry := newRegistry(dm, roleClient, index)
	synchronizer := newSynchronizer(registry, roleClient, index)
	timeZone := newTimeZone(dm, registry, roleClient, index)
	timeZone.SetSynchronizer(synchronizer)

	return &Instance{
		TimeZone:     timeZone,
		Registry:     registry,
		Synchronizer: synchronizer,
	}
}
