package engine

import "hairnote/internal/report/models"

// Classify partitions every panel into per-status Korean name lists with
// counts. Ordering follows the panel declaration order so reports are stable.
func Classify(in *models.Input) models.PersonalSection {
	p := models.PersonalSection{
		Name:         in.PersonalInfo.Name,
		Age:          in.PersonalInfo.Age,
		AgeGroup:     models.BracketFor(in.PersonalInfo.Age),
		SpecialNotes: in.PersonalInfo.SpecialNotes,
	}

	for _, r := range in.Readings(models.TopicHeavyMetal) {
		switch r.Status {
		case models.StatusHigh:
			p.HeavyMetalsHigh = append(p.HeavyMetalsHigh, r.Korean)
		default:
			p.HeavyMetalsNormal = append(p.HeavyMetalsNormal, r.Korean)
		}
	}
	p.HeavyMetalsNormalCount = len(p.HeavyMetalsNormal)
	p.HeavyMetalsHighCount = len(p.HeavyMetalsHigh)

	for _, r := range in.Readings(models.TopicMineral) {
		switch r.Status {
		case models.StatusHigh:
			p.MineralsHigh = append(p.MineralsHigh, r.Korean)
		case models.StatusLow:
			p.MineralsLow = append(p.MineralsLow, r.Korean)
		default:
			p.MineralsNormal = append(p.MineralsNormal, r.Korean)
		}
	}
	p.MineralsNormalCount = len(p.MineralsNormal)
	p.MineralsHighCount = len(p.MineralsHigh)
	p.MineralsLowCount = len(p.MineralsLow)

	for _, r := range in.Readings(models.TopicHealthIndicator) {
		switch r.Status {
		case models.StatusHigh:
			p.HealthHigh = append(p.HealthHigh, r.Korean)
		case models.StatusLow:
			p.HealthLow = append(p.HealthLow, r.Korean)
		default:
			p.HealthNormal = append(p.HealthNormal, r.Korean)
		}
	}
	p.HealthNormalCount = len(p.HealthNormal)
	p.HealthHighCount = len(p.HealthHigh)
	p.HealthLowCount = len(p.HealthLow)

	return p
}
