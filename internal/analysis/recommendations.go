package analysis

import "solarwatch/internal/models"

// RecommendationSectors is the order in which recommendation groups are reported.
var RecommendationSectors = []models.Sector{
	models.SectorTelecommunications,
	models.SectorPowerGrid,
	models.SectorAviation,
	models.SectorSatellites,
	models.SectorGeneral,
}

// SpecificRecommendations returns sector advice for the categories present.
func SpecificRecommendations(evts []models.SolarEvent) models.Recommendations {
	recs := models.Recommendations{}
	for _, s := range RecommendationSectors {
		recs[s] = []string{}
	}

	counts := models.CountByCategory(evts)
	if counts[models.CategoryGST] > 0 {
		recs[models.SectorTelecommunications] = append(recs[models.SectorTelecommunications], "Monitorar sistemas GPS e comunicações por rádio")
		recs[models.SectorPowerGrid] = append(recs[models.SectorPowerGrid], "Verificar estabilidade da rede elétrica em altas latitudes")
		recs[models.SectorGeneral] = append(recs[models.SectorGeneral], "Possível visualização de auroras em latitudes mais baixas")
	}
	if counts[models.CategoryCME] > 0 {
		recs[models.SectorSatellites] = append(recs[models.SectorSatellites], "Colocar satélites em modo de proteção se necessário")
		recs[models.SectorAviation] = append(recs[models.SectorAviation], "Considerar rotas alternativas para voos polares")
	}
	if counts[models.CategoryFLR] > 0 {
		recs[models.SectorTelecommunications] = append(recs[models.SectorTelecommunications], "Possível interferência em comunicações de rádio HF")
	}
	return recs
}

// Empty reports whether no sector carries advice.
func Empty(recs models.Recommendations) bool {
	for _, list := range recs {
		if len(list) > 0 {
			return false
		}
	}
	return true
}
