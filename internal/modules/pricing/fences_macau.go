package pricing

import "explore/internal/modules/geofence"

// Macau fare areas and ports as encoded polyline rings.
var (
	FenceMacau = geofence.Fence{
		Name:     "MACAU",
		Encoding: "_kpfCqv}sTdCsCnJShCGpJUbUvDpKfBbMtBhd@lZxBaEnGjEzK`DnHX`DJ`YyF?q|BedAieCo|A?IzAeLOoKtBqDrEsRxh@iRls@ABgCnJl@xAm@|BKb@eEUB`@RlCf@dALl@Hj@@^?d@Ef@S|@LzBRPk@tB?|ACJAlEUx@EdD~B`EvJxDZHvBnABHvAn@MXEJLH`@\\DLDJ?z@yBfP?hJB`AJx@Nt@Hp@l@zBpDhHfEcAPCzHiBfMgC",
	}
	FenceTaipa = geofence.Fence{
		Name:     "TAIPA",
		Encoding: "{x`fCmo`tTkNu}@}EiBSMIMCWVeRo@k@wAOoS_@ZmTIyCOGIUAW?SIk@KMMQEQMcASYYKKMYcA]i@Ga@Ea@YU[U{@_AWM]_@WQo@eAa@o@e@i@[SEGGOIm@PYL[Bc@MK@g@Eq@Ic@@c@\\wFUmASMK[AYAM@k@Ak@M_@E[Dm@LYRC`@Oy@qBCGs@uA_BbAKFK@MEIImCcFMHE@K@WAMEKKs@_AkFyJgCmEoBwDW_ACu@@e@BWJc@CI@ISK?cHitD??tjIb}Aam@xhA_~@zlBhC",
	}
	FenceColoane = geofence.Fence{
		Name:     "COLOANE",
		Encoding: "{x`fCmo`tTdjA~Ati@cGlGyP?abCohCohCavAxm@lJvPeH~FOb@RJAHBHKb@CVAd@Bt@V~@nBvDfClEjFxJr@~@JJLDV@JADALIlCbFHHLDJAJG~AcAr@tABFx@pBa@NSBMXEl@DZL^@j@Aj@@L@XJZRLTlA]vFAb@Hb@Dp@Af@LJCb@MZQXHl@FNDFZRd@h@`@n@n@dAVP\\^VLz@~@ZTXTD`@F`@\\h@XbAJLXJRXLbADPLPJLHj@?R@VHTNFHxC[lTnS^vANn@j@WdRBVHLRL|EhBjNt}@",
	}
	FenceUM = geofence.Fence{
		Name:     "UM",
		Encoding: "qmbfCme`tT@`@nAxh@l@n@dfAuBnBcAbQq[CqDA?Q?I?yAEiACyAEiACwCIsXq@Y?aKWwEKiGOqDKuBE_BAoCEgFEo@Cw@A@Z",
	}
	FenceHZMB = geofence.Fence{
		Name:     "HZMB",
		Encoding: "cinfCezdtT?g_Aql@??f_Apl@?",
	}
	FenceTaipaFerry = geofence.Fence{
		Name:     "TAIPAFERRY",
		Encoding: "szgfCyvetTxF??}FyF??|F",
	}
	FenceAirport = geofence.Fence{
		Name:     "AIRPORT",
		Encoding: "c~ffCcqetTbAVrA\\rAt@dAhAr@~Af@SaA_CkCwBsDy@Kn@",
	}
	FenceHengqin = geofence.Fence{
		Name:     "HENGQIN",
		Encoding: "g`dfCqi_tTno@??o^oo@??n^",
	}
)
